package dataset

import (
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"career-compass/internal/domain"
)

// Snapshot es una vista inmutable de las tablas curadas. Se construye una
// vez (arranque o reload) y nunca se muta; los requests en vuelo conservan
// su referencia durante un reload.
type Snapshot struct {
	ID       string
	LoadedAt time.Time

	questions          []domain.Question
	profiles           map[domain.PersonalityCode]domain.PersonalityProfile
	profileCodes       []domain.PersonalityCode
	industries         map[domain.PersonalityCode][]domain.IndustryRecord
	industryCodes      []domain.PersonalityCode
	traitQuestionCount map[domain.Trait]int
}

// Questions devuelve el pool de preguntas en orden de dataset.
// El slice es de solo lectura.
func (s *Snapshot) Questions() []domain.Question {
	return s.questions
}

// QuestionCount devuelve el tamaño esperado del vector de respuestas.
func (s *Snapshot) QuestionCount() int {
	return len(s.questions)
}

// TraitQuestionCount devuelve cuantas preguntas aportan al trait dado.
func (s *Snapshot) TraitQuestionCount(t domain.Trait) int {
	return s.traitQuestionCount[t]
}

// Profile busca el perfil curado para un codigo exacto.
func (s *Snapshot) Profile(code domain.PersonalityCode) (domain.PersonalityProfile, bool) {
	p, ok := s.profiles[code]
	return p, ok
}

// ProfileCodes devuelve los codigos curados en orden lexicografico.
func (s *Snapshot) ProfileCodes() []domain.PersonalityCode {
	return s.profileCodes
}

// Industries devuelve las industrias asociadas al codigo, ya ordenadas por
// prioridad y nombre. El slice es de solo lectura.
func (s *Snapshot) Industries(code domain.PersonalityCode) []domain.IndustryRecord {
	return s.industries[code]
}

// IndustryCodes devuelve los codigos con industrias curadas, en orden
// lexicografico.
func (s *Snapshot) IndustryCodes() []domain.PersonalityCode {
	return s.industryCodes
}

// Stats resume el contenido del snapshot para logging y healthz.
type Stats struct {
	SnapshotID string    `json:"snapshot_id"`
	LoadedAt   time.Time `json:"loaded_at"`
	Questions  int       `json:"questions"`
	Profiles   int       `json:"profiles"`
	Industries int       `json:"industries"`
}

// Stats devuelve los conteos del snapshot.
func (s *Snapshot) Stats() Stats {
	total := 0
	for _, list := range s.industries {
		total += len(list)
	}
	return Stats{
		SnapshotID: s.ID,
		LoadedAt:   s.LoadedAt,
		Questions:  len(s.questions),
		Profiles:   len(s.profiles),
		Industries: total,
	}
}

// index arma los mapas de busqueda. Las industrias de cada codigo quedan
// ordenadas por prioridad ascendente, nombre como desempate (case-insensitive),
// y deduplicadas por nombre conservando la primera.
func (s *Snapshot) index(profiles []domain.PersonalityProfile, industries []domain.IndustryRecord) {
	s.profiles = make(map[domain.PersonalityCode]domain.PersonalityProfile, len(profiles))
	for _, p := range profiles {
		code := domain.PersonalityCode(strings.ToUpper(strings.TrimSpace(string(p.Code))))
		p.Code = code
		s.profiles[code] = p
	}
	s.profileCodes = make([]domain.PersonalityCode, 0, len(s.profiles))
	for code := range s.profiles {
		s.profileCodes = append(s.profileCodes, code)
	}
	sort.Slice(s.profileCodes, func(i, j int) bool { return s.profileCodes[i] < s.profileCodes[j] })

	s.industries = make(map[domain.PersonalityCode][]domain.IndustryRecord)
	for _, ind := range industries {
		code := domain.PersonalityCode(strings.ToUpper(strings.TrimSpace(string(ind.Code))))
		ind.Code = code
		s.industries[code] = append(s.industries[code], ind)
	}
	for code, list := range s.industries {
		sort.SliceStable(list, func(i, j int) bool {
			if list[i].Priority != list[j].Priority {
				return list[i].Priority < list[j].Priority
			}
			return strings.ToLower(list[i].Name) < strings.ToLower(list[j].Name)
		})
		seen := make(map[string]struct{}, len(list))
		deduped := list[:0]
		for _, ind := range list {
			key := strings.ToLower(strings.TrimSpace(ind.Name))
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			deduped = append(deduped, ind)
		}
		s.industries[code] = deduped
	}
	s.industryCodes = make([]domain.PersonalityCode, 0, len(s.industries))
	for code := range s.industries {
		s.industryCodes = append(s.industryCodes, code)
	}
	sort.Slice(s.industryCodes, func(i, j int) bool { return s.industryCodes[i] < s.industryCodes[j] })

	s.traitQuestionCount = make(map[domain.Trait]int, len(domain.CanonicalTraits))
	for _, q := range s.questions {
		for _, t := range q.Traits {
			if t.Valid() {
				s.traitQuestionCount[t]++
			}
		}
	}
}

// Store mantiene el snapshot vigente detras de un puntero atomico.
// Reload = construir snapshot nuevo y hacer swap, nunca mutar el vigente.
type Store struct {
	current atomic.Pointer[Snapshot]
}

func NewStore(initial *Snapshot) *Store {
	st := &Store{}
	st.current.Store(initial)
	return st
}

// Current devuelve el snapshot vigente.
func (st *Store) Current() *Snapshot {
	return st.current.Load()
}

// Replace publica un snapshot nuevo y devuelve el anterior.
func (st *Store) Replace(next *Snapshot) *Snapshot {
	return st.current.Swap(next)
}
