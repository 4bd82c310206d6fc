package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"profile-votes/internal/domain"
)

// CommentRepository define el contrato de persistencia para comentarios.
type CommentRepository interface {
	Create(ctx context.Context, comment domain.Comment) error
	// ListByProfile devuelve los comentarios del perfil del mas reciente al mas
	// antiguo, con el nombre del autor resuelto. Si voted no es vacio solo
	// incluye comentarios con voto en esa dimension.
	ListByProfile(ctx context.Context, profileID string, voted domain.Dimension) ([]domain.Comment, error)
	// ToggleLike invierte la pertenencia de userID al conjunto de likes en una
	// sola sentencia. pgx.ErrNoRows si el comentario no existe.
	ToggleLike(ctx context.Context, commentID, userID string, at time.Time) (domain.Comment, error)
}

// PgCommentRepository implementa CommentRepository usando pgxpool.
type PgCommentRepository struct {
	pool *pgxpool.Pool
}

func NewPgCommentRepository(pool *pgxpool.Pool) *PgCommentRepository {
	return &PgCommentRepository{pool: pool}
}

// dimensionColumns evita interpolar texto del cliente en el SQL.
var dimensionColumns = map[domain.Dimension]string{
	domain.DimensionMBTI:      "c.mbti",
	domain.DimensionEnneagram: "c.enneagram",
	domain.DimensionZodiac:    "c.zodiac",
}

const commentSelect = `
	SELECT c.id, c.profile_id, c.user_id, c.title, c.text, c.mbti, c.enneagram, c.zodiac,
	       c.likes, c.created_at, c.updated_at, COALESCE(u.name, '')
`

func (r *PgCommentRepository) Create(ctx context.Context, comment domain.Comment) error {
	const query = `
		INSERT INTO comments (id, profile_id, user_id, title, text, mbti, enneagram, zodiac, likes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	likes := comment.Likes
	if likes == nil {
		likes = []string{}
	}
	_, err := r.pool.Exec(ctx, query,
		comment.ID,
		comment.ProfileID,
		comment.UserID,
		comment.Title,
		comment.Text,
		comment.MBTI,
		comment.Enneagram,
		comment.Zodiac,
		likes,
		comment.CreatedAt,
		comment.UpdatedAt,
	)
	return err
}

func (r *PgCommentRepository) ListByProfile(ctx context.Context, profileID string, voted domain.Dimension) ([]domain.Comment, error) {
	query := commentSelect + `
		FROM comments c
		LEFT JOIN users u ON u.id = c.user_id
		WHERE c.profile_id = $1
	`
	if voted != "" {
		column, ok := dimensionColumns[voted]
		if !ok {
			return nil, fmt.Errorf("unknown dimension %q", voted)
		}
		query += ` AND ` + column + ` IS NOT NULL`
	}
	query += ` ORDER BY c.created_at DESC`

	rows, err := r.pool.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []domain.Comment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *PgCommentRepository) ToggleLike(ctx context.Context, commentID, userID string, at time.Time) (domain.Comment, error) {
	const query = `
		WITH c AS (
			UPDATE comments
			SET likes = CASE
					WHEN $2::text = ANY(likes) THEN array_remove(likes, $2::text)
					ELSE array_append(likes, $2::text)
				END,
				updated_at = $3
			WHERE id = $1
			RETURNING *
		)
	` + commentSelect + `
		FROM c
		LEFT JOIN users u ON u.id = c.user_id
	`
	return scanComment(r.pool.QueryRow(ctx, query, commentID, userID, at))
}

func scanComment(row pgx.Row) (domain.Comment, error) {
	var c domain.Comment
	err := row.Scan(
		&c.ID,
		&c.ProfileID,
		&c.UserID,
		&c.Title,
		&c.Text,
		&c.MBTI,
		&c.Enneagram,
		&c.Zodiac,
		&c.Likes,
		&c.CreatedAt,
		&c.UpdatedAt,
		&c.AuthorName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Comment{}, err
	}
	return c, err
}
