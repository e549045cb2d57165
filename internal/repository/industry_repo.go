package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"career-compass/internal/domain"
)

type IndustryRepository interface {
	ListAll(ctx context.Context) ([]domain.IndustryRecord, error)
}

type PgIndustryRepository struct {
	pool *pgxpool.Pool
}

func NewPgIndustryRepository(pool *pgxpool.Pool) *PgIndustryRepository {
	return &PgIndustryRepository{pool: pool}
}

// ListAll devuelve las industrias curadas. Una fila por par (codigo, industria);
// la misma industria puede aparecer bajo varios codigos.
func (r *PgIndustryRepository) ListAll(ctx context.Context) ([]domain.IndustryRecord, error) {
	const query = `
		SELECT id, code, priority, name, overview, trending, insight, example_paths, education
		FROM industries
		ORDER BY code, priority, name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var industries []domain.IndustryRecord
	for rows.Next() {
		var ind domain.IndustryRecord

		if err := rows.Scan(
			&ind.ID,
			&ind.Code,
			&ind.Priority,
			&ind.Name,
			&ind.Overview,
			&ind.Trending,
			&ind.Insight,
			&ind.ExamplePaths,
			&ind.EducationRaw,
		); err != nil {
			return nil, err
		}
		industries = append(industries, ind)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return industries, nil
}
