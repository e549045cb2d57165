package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"career-compass/internal/domain"
)

type ProfileRepository interface {
	ListAll(ctx context.Context) ([]domain.PersonalityProfile, error)
}

type PgProfileRepository struct {
	pool *pgxpool.Pool
}

func NewPgProfileRepository(pool *pgxpool.Pool) *PgProfileRepository {
	return &PgProfileRepository{pool: pool}
}

// ListAll devuelve los perfiles curados, uno por codigo de dos letras.
func (r *PgProfileRepository) ListAll(ctx context.Context) ([]domain.PersonalityProfile, error) {
	const query = `
		SELECT code, role, description, interpretation, enjoyment, strengths, icon_id
		FROM personality_profiles
		ORDER BY code
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.PersonalityProfile
	for rows.Next() {
		var p domain.PersonalityProfile

		if err := rows.Scan(
			&p.Code,
			&p.Role,
			&p.Description,
			&p.Interpretation,
			&p.Enjoyment,
			&p.Strengths,
			&p.IconID,
		); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return profiles, nil
}
