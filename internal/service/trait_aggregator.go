package service

import "career-compass/internal/domain"

// TraitAggregator convierte un vector de respuestas validado en puntajes
// RIASEC. Sin condiciones de error: siempre totaliza las seis dimensiones.
type TraitAggregator struct{}

// Aggregate suma una unidad a cada trait de las preguntas respondidas
// afirmativamente. Una pregunta puede aportar a mas de un trait.
func (TraitAggregator) Aggregate(answers domain.AnswerVector, questions []domain.Question) domain.TraitScores {
	scores := domain.NewTraitScores()
	for i, answer := range answers {
		if answer != domain.AnswerYes || i >= len(questions) {
			continue
		}
		for _, t := range questions[i].Traits {
			if t.Valid() {
				scores[t]++
			}
		}
	}
	return scores
}

// Normalize divide el conteo crudo de cada trait por el maximo alcanzable
// (la cantidad de preguntas etiquetadas con el). Un trait sin preguntas
// etiquetadas normaliza a 0.
func (TraitAggregator) Normalize(raw domain.TraitScores, taggedCount func(domain.Trait) int) domain.TraitScores {
	normalized := domain.NewTraitScores()
	for _, t := range domain.CanonicalTraits {
		if n := taggedCount(t); n > 0 {
			normalized[t] = raw[t] / float64(n)
		}
	}
	return normalized
}
