package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"profile-votes/internal/domain"
	"profile-votes/internal/repository"
)

// ProfileService coordina la creacion y lectura de perfiles.
type ProfileService struct {
	logger       *zap.Logger
	profiles     repository.ProfileRepository
	catalog      *domain.Catalog
	defaultImage string
	seedDefault  bool
	now          func() time.Time
}

// ProfileOptions agrupa ajustes opcionales de ProfileService.
type ProfileOptions struct {
	DefaultImage string
	// SeedDefault crea un perfil de ejemplo cuando Default encuentra el store vacio.
	SeedDefault bool
}

func NewProfileService(logger *zap.Logger, profiles repository.ProfileRepository, catalog *domain.Catalog, opts ProfileOptions) *ProfileService {
	if opts.DefaultImage == "" {
		opts.DefaultImage = domain.DefaultProfileImage
	}
	return &ProfileService{
		logger:       logger,
		profiles:     profiles,
		catalog:      catalog,
		defaultImage: opts.DefaultImage,
		seedDefault:  opts.SeedDefault,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

type CreateProfileInput struct {
	Name         string
	Description  string
	Votes        domain.Votes
	Variant      string
	Tritype      *int
	Socionics    string
	Sloan        string
	Psyche       string
	Temperaments string
	Image        string
}

func (s *ProfileService) Create(ctx context.Context, input CreateProfileInput) (domain.Profile, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return domain.Profile{}, domain.Required("name")
	}
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return domain.Profile{}, domain.Required("description")
	}
	if err := s.catalog.ValidateVotes(input.Votes); err != nil {
		return domain.Profile{}, err
	}

	image := strings.TrimSpace(input.Image)
	if image == "" {
		image = s.defaultImage
	}

	now := s.now()
	profile := domain.Profile{
		ID:           uuid.NewString(),
		Name:         name,
		Description:  description,
		Votes:        input.Votes,
		Variant:      strings.TrimSpace(input.Variant),
		Tritype:      input.Tritype,
		Socionics:    strings.TrimSpace(input.Socionics),
		Sloan:        strings.TrimSpace(input.Sloan),
		Psyche:       strings.TrimSpace(input.Psyche),
		Temperaments: strings.TrimSpace(input.Temperaments),
		Image:        image,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.profiles.Create(ctx, profile); err != nil {
		return domain.Profile{}, fmt.Errorf("create profile: %w", err)
	}
	return profile, nil
}

func (s *ProfileService) Get(ctx context.Context, id string) (domain.Profile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Profile{}, domain.ErrProfileNotFound
	}
	profile, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Profile{}, domain.ErrProfileNotFound
		}
		return domain.Profile{}, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

// Default devuelve el primer perfil. Con el store vacio crea el perfil de
// ejemplo si el seeding esta habilitado; si no, ErrProfileNotFound.
func (s *ProfileService) Default(ctx context.Context) (domain.Profile, error) {
	profile, err := s.profiles.First(ctx)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.Profile{}, fmt.Errorf("get first profile: %w", err)
	}
	if !s.seedDefault {
		return domain.Profile{}, domain.ErrProfileNotFound
	}

	s.logger.Info("profile store empty, seeding default profile")
	return s.Create(ctx, seedProfileInput())
}

func seedProfileInput() CreateProfileInput {
	mbti, enneagram, tritype := "ISFJ", "9w3", 725
	return CreateProfileInput{
		Name:        "A Martinez",
		Description: "Adolph Larrue Martinez III.",
		Votes: domain.Votes{
			MBTI:      &mbti,
			Enneagram: &enneagram,
		},
		Variant:   "sp/so",
		Tritype:   &tritype,
		Socionics: "SEE",
		Sloan:     "RCOEN",
		Psyche:    "FEVL",
	}
}
