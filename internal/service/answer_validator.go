package service

import (
	"strings"

	"go.uber.org/zap"

	"career-compass/internal/domain"
)

// AnswerValidator normaliza y valida la secuencia cruda de respuestas.
// Es la unica via para construir un AnswerVector.
type AnswerValidator struct {
	logger *zap.Logger
}

func NewAnswerValidator(logger *zap.Logger) *AnswerValidator {
	return &AnswerValidator{logger: logger}
}

// Validate devuelve un AnswerVector de exactamente questionCount valores o
// falla con *ValidationError si el largo no coincide. Los tokens que no se
// reconocen como si/no cuentan como NO con un warning: la UI ya exige
// responder antes de enviar, aca es solo una red de seguridad.
func (v *AnswerValidator) Validate(raw []string, questionCount int) (domain.AnswerVector, error) {
	if len(raw) != questionCount {
		return nil, &ValidationError{Expected: questionCount, Got: len(raw)}
	}

	vec := make(domain.AnswerVector, 0, len(raw))
	for i, value := range raw {
		switch strings.ToUpper(strings.TrimSpace(value)) {
		case "YES", "Y":
			vec = append(vec, domain.AnswerYes)
		case "NO", "N":
			vec = append(vec, domain.AnswerNo)
		default:
			v.logger.Warn("unrecognized answer token, counted as NO",
				zap.Int("index", i),
				zap.String("value", value),
			)
			vec = append(vec, domain.AnswerNo)
		}
	}
	return vec, nil
}
