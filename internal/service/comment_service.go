package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"profile-votes/internal/domain"
	"profile-votes/internal/repository"
)

const (
	// SortBest ordena el feed por cantidad de likes.
	SortBest = "best"

	MaxPageSize = 100
)

// CommentService publica comentarios, arma el feed de un perfil y alterna likes.
type CommentService struct {
	logger   *zap.Logger
	comments repository.CommentRepository
	catalog  *domain.Catalog
	limiter  RateLimiter
	now      func() time.Time
}

// NewCommentService crea el servicio. Con limiter nil no se limita la publicacion.
func NewCommentService(logger *zap.Logger, comments repository.CommentRepository, catalog *domain.Catalog, limiter RateLimiter) *CommentService {
	if limiter == nil {
		limiter = unlimited{}
	}
	return &CommentService{
		logger:   logger,
		comments: comments,
		catalog:  catalog,
		limiter:  limiter,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

type CreateCommentInput struct {
	ProfileID string
	UserID    string
	Title     string
	Text      string
	Votes     domain.Votes
}

// Create valida y guarda un comentario. No verifica que el perfil o el usuario existan.
func (s *CommentService) Create(ctx context.Context, input CreateCommentInput) (domain.Comment, error) {
	profileID := strings.TrimSpace(input.ProfileID)
	if profileID == "" {
		return domain.Comment{}, domain.Required("profileId")
	}
	userID := strings.TrimSpace(input.UserID)
	if userID == "" {
		return domain.Comment{}, domain.Required("userId")
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return domain.Comment{}, domain.Required("title")
	}
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return domain.Comment{}, domain.Required("text")
	}
	if err := s.catalog.ValidateVotes(input.Votes); err != nil {
		return domain.Comment{}, err
	}
	if !s.limiter.Allow(ctx, userID) {
		return domain.Comment{}, ErrRateLimited
	}

	now := s.now()
	comment := domain.Comment{
		ID:        uuid.NewString(),
		ProfileID: profileID,
		UserID:    userID,
		Title:     title,
		Text:      text,
		Votes:     input.Votes,
		Likes:     []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		// El cupo solo cuenta comentarios guardados.
		s.limiter.Release(context.WithoutCancel(ctx), userID)
		return domain.Comment{}, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}

// ListOptions controla filtro, orden y paginacion del feed. Los valores de
// Filter y Sort no reconocidos se ignoran.
type ListOptions struct {
	Filter string
	Sort   string
	Limit  int
	Offset int
}

// List devuelve el feed de comentarios de un perfil.
//
// Con Sort "best" el orden es por cantidad de likes descendente; los empates
// quedan en el orden de recuperacion (mas reciente primero), sin garantia.
// En cualquier otro caso, del mas reciente al mas antiguo.
func (s *CommentService) List(ctx context.Context, profileID string, opts ListOptions) ([]domain.Comment, error) {
	if opts.Limit < 0 || opts.Limit > MaxPageSize {
		return nil, &domain.ValidationError{
			Field:   "limit",
			Message: fmt.Sprintf("limit must be between 1 and %d", MaxPageSize),
		}
	}
	if opts.Offset < 0 {
		return nil, &domain.ValidationError{Field: "offset", Message: "offset must not be negative"}
	}

	voted, _ := domain.ParseDimension(opts.Filter)

	comments, err := s.comments.ListByProfile(ctx, strings.TrimSpace(profileID), voted)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	if strings.EqualFold(opts.Sort, SortBest) {
		sort.SliceStable(comments, func(i, j int) bool {
			return comments[i].LikeCount() > comments[j].LikeCount()
		})
	}

	return paginate(comments, opts.Limit, opts.Offset), nil
}

func paginate(comments []domain.Comment, limit, offset int) []domain.Comment {
	if offset >= len(comments) {
		return []domain.Comment{}
	}
	comments = comments[offset:]
	if limit > 0 && limit < len(comments) {
		comments = comments[:limit]
	}
	return comments
}

// ToggleLike agrega userID a los likes del comentario o lo quita si ya estaba.
// Dos llamadas seguidas con los mismos argumentos dejan el conjunto como estaba.
func (s *CommentService) ToggleLike(ctx context.Context, commentID, userID string) (domain.Comment, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return domain.Comment{}, domain.Required("userId")
	}
	commentID = strings.TrimSpace(commentID)
	if commentID == "" {
		return domain.Comment{}, domain.ErrCommentNotFound
	}

	comment, err := s.comments.ToggleLike(ctx, commentID, userID, s.now())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Comment{}, domain.ErrCommentNotFound
		}
		return domain.Comment{}, fmt.Errorf("toggle like: %w", err)
	}
	s.logger.Debug("like toggled",
		zap.String("comment_id", commentID),
		zap.String("user_id", userID),
		zap.Bool("liked", comment.LikedBy(userID)),
	)
	return comment, nil
}
