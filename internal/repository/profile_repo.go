package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"profile-votes/internal/domain"
)

// ProfileRepository define el contrato de persistencia para perfiles.
type ProfileRepository interface {
	Create(ctx context.Context, profile domain.Profile) error
	GetByID(ctx context.Context, id string) (domain.Profile, error)
	First(ctx context.Context) (domain.Profile, error)
}

// PgProfileRepository implementa ProfileRepository usando pgxpool.
type PgProfileRepository struct {
	pool *pgxpool.Pool
}

func NewPgProfileRepository(pool *pgxpool.Pool) *PgProfileRepository {
	return &PgProfileRepository{pool: pool}
}

const profileColumns = `
	id, name, description, mbti, enneagram, zodiac, variant, tritype,
	socionics, sloan, psyche, temperaments, image, created_at, updated_at
`

func (r *PgProfileRepository) Create(ctx context.Context, profile domain.Profile) error {
	const query = `
		INSERT INTO profiles (` + profileColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err := r.pool.Exec(ctx, query,
		profile.ID,
		profile.Name,
		profile.Description,
		profile.MBTI,
		profile.Enneagram,
		profile.Zodiac,
		profile.Variant,
		profile.Tritype,
		profile.Socionics,
		profile.Sloan,
		profile.Psyche,
		profile.Temperaments,
		profile.Image,
		profile.CreatedAt,
		profile.UpdatedAt,
	)
	return err
}

func (r *PgProfileRepository) GetByID(ctx context.Context, id string) (domain.Profile, error) {
	const query = `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	return scanProfile(r.pool.QueryRow(ctx, query, id))
}

// First devuelve el perfil mas antiguo; pgx.ErrNoRows si no hay ninguno.
func (r *PgProfileRepository) First(ctx context.Context) (domain.Profile, error) {
	const query = `SELECT ` + profileColumns + ` FROM profiles ORDER BY created_at ASC LIMIT 1`
	return scanProfile(r.pool.QueryRow(ctx, query))
}

func scanProfile(row pgx.Row) (domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.MBTI,
		&p.Enneagram,
		&p.Zodiac,
		&p.Variant,
		&p.Tritype,
		&p.Socionics,
		&p.Sloan,
		&p.Psyche,
		&p.Temperaments,
		&p.Image,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Profile{}, err
	}
	return p, err
}
