package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"career-compass/internal/domain"
)

type QuestionRepository interface {
	ListAll(ctx context.Context) ([]domain.Question, error)
}

type PgQuestionRepository struct {
	pool *pgxpool.Pool
}

func NewPgQuestionRepository(pool *pgxpool.Pool) *PgQuestionRepository {
	return &PgQuestionRepository{pool: pool}
}

// ListAll devuelve el pool completo de preguntas en orden de id.
// El orden define la alineacion por indice con el vector de respuestas.
func (r *PgQuestionRepository) ListAll(ctx context.Context) ([]domain.Question, error) {
	const query = `
		SELECT id, text, traits
		FROM questions
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []domain.Question
	for rows.Next() {
		var q domain.Question
		var traits []string

		if err := rows.Scan(&q.ID, &q.Text, &traits); err != nil {
			return nil, err
		}
		q.Traits = make([]domain.Trait, 0, len(traits))
		for _, t := range traits {
			q.Traits = append(q.Traits, domain.Trait(t))
		}
		questions = append(questions, q)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return questions, nil
}
