package domain

// Trait es una de las seis dimensiones RIASEC.
type Trait string

const (
	TraitRealistic     Trait = "R"
	TraitInvestigative Trait = "I"
	TraitArtistic      Trait = "A"
	TraitSocial        Trait = "S"
	TraitEnterprising  Trait = "E"
	TraitConventional  Trait = "C"
)

// CanonicalTraits fija el orden R < I < A < S < E < C usado para desempates.
var CanonicalTraits = [6]Trait{
	TraitRealistic,
	TraitInvestigative,
	TraitArtistic,
	TraitSocial,
	TraitEnterprising,
	TraitConventional,
}

// CanonicalRank devuelve la posicion del trait en el orden canonico (0-5),
// o 6 si el trait no pertenece al conjunto.
func CanonicalRank(t Trait) int {
	for i, c := range CanonicalTraits {
		if c == t {
			return i
		}
	}
	return len(CanonicalTraits)
}

// Valid indica si el trait pertenece al conjunto RIASEC.
func (t Trait) Valid() bool {
	return CanonicalRank(t) < len(CanonicalTraits)
}

// TraitScores mapea cada dimension RIASEC a un puntaje.
// Crudo: conteo de respuestas afirmativas. Normalizado: valor en [0, 1].
type TraitScores map[Trait]float64

// NewTraitScores devuelve un mapa con las seis dimensiones en cero.
func NewTraitScores() TraitScores {
	scores := make(TraitScores, len(CanonicalTraits))
	for _, t := range CanonicalTraits {
		scores[t] = 0
	}
	return scores
}

type Answer string

const (
	AnswerYes Answer = "YES"
	AnswerNo  Answer = "NO"
)

// AnswerVector es la secuencia normalizada de respuestas, alineada por
// indice con el orden de las preguntas. Solo se construye via el validador.
type AnswerVector []Answer
