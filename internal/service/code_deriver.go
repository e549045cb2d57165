package service

import (
	"sort"

	"career-compass/internal/domain"
)

// CodeDeriver selecciona los dos traits dominantes a partir de los
// puntajes normalizados. Funcion total: nunca falla, los codigos sin
// perfil curado se degradan recien en el resolver.
type CodeDeriver struct{}

// Derive ordena las seis dimensiones por puntaje descendente y arma el
// codigo con las dos primeras. Empates se resuelven por el orden canonico
// R < I < A < S < E < C: se parte de ese orden y el sort es estable, asi
// que inputs identicos producen siempre el mismo codigo.
func (CodeDeriver) Derive(scores domain.TraitScores) domain.PersonalityCode {
	traits := make([]domain.Trait, len(domain.CanonicalTraits))
	copy(traits, domain.CanonicalTraits[:])

	sort.SliceStable(traits, func(i, j int) bool {
		return scores[traits[i]] > scores[traits[j]]
	})

	return domain.PersonalityCode(string(traits[0]) + string(traits[1]))
}
