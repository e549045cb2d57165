package dataset

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"career-compass/internal/domain"
	"career-compass/internal/repository"
)

// legacyEducationDelimiter es el separador usado por registros historicos
// del dataset. Se migra al delimitador canonico al construir el snapshot.
const legacyEducationDelimiter = "--"

// Loader construye snapshots inmutables a partir de las tablas curadas.
type Loader struct {
	questions  repository.QuestionRepository
	profiles   repository.ProfileRepository
	industries repository.IndustryRepository
	logger     *zap.Logger
}

func NewLoader(
	questions repository.QuestionRepository,
	profiles repository.ProfileRepository,
	industries repository.IndustryRepository,
	logger *zap.Logger,
) *Loader {
	return &Loader{
		questions:  questions,
		profiles:   profiles,
		industries: industries,
		logger:     logger,
	}
}

// Load lee las tres tablas y arma un snapshot nuevo. Falla solo si alguna
// tabla no se puede leer o si no hay preguntas; el resto de los problemas
// de calidad de datos se absorben con las cadenas de fallback del motor.
func (l *Loader) Load(ctx context.Context) (*Snapshot, error) {
	questions, err := l.questions.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("load questions: dataset has no questions")
	}

	profiles, err := l.profiles.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load personality profiles: %w", err)
	}

	industries, err := l.industries.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load industries: %w", err)
	}

	migrated := 0
	for i := range industries {
		canonical := canonicalEducation(industries[i].EducationRaw)
		if canonical != industries[i].EducationRaw {
			migrated++
		}
		industries[i].EducationRaw = canonical
	}

	snap := &Snapshot{
		ID:        uuid.NewString(),
		LoadedAt:  time.Now().UTC(),
		questions: questions,
	}
	snap.index(profiles, industries)

	l.logger.Info("dataset snapshot loaded",
		zap.String("snapshot_id", snap.ID),
		zap.Int("questions", len(questions)),
		zap.Int("profiles", len(profiles)),
		zap.Int("industries", len(industries)),
		zap.Int("education_migrated", migrated),
	)

	return snap, nil
}

// canonicalEducation migra un string de educacion al delimitador canonico.
// Los registros que ya usan "//" quedan intactos; los historicos con "--"
// se reescriben. Esto pasa una sola vez por carga, nunca por request.
func canonicalEducation(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.Contains(raw, domain.EducationDelimiter) {
		return raw
	}
	if strings.Contains(raw, legacyEducationDelimiter) {
		return strings.ReplaceAll(raw, legacyEducationDelimiter, domain.EducationDelimiter)
	}
	return raw
}
