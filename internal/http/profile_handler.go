package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"profile-votes/internal/domain"
	"profile-votes/internal/service"
)

// ProfileHandler mantiene dependencias para endpoints de perfiles.
type ProfileHandler struct {
	logger   *zap.Logger
	profiles *service.ProfileService
}

// NewProfileHandler crea una instancia de ProfileHandler con dependencias necesarias.
func NewProfileHandler(logger *zap.Logger, profiles *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		logger:   logger,
		profiles: profiles,
	}
}

type createProfileRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description" binding:"required"`
	MBTI         *string `json:"mbti" binding:"omitempty,mbti"`
	Enneagram    *string `json:"enneagram" binding:"omitempty,enneagram"`
	Zodiac       *string `json:"zodiac" binding:"omitempty,zodiac"`
	Variant      string  `json:"variant"`
	Tritype      *int    `json:"tritype"`
	Socionics    string  `json:"socionics"`
	Sloan        string  `json:"sloan"`
	Psyche       string  `json:"psyche"`
	Temperaments string  `json:"temperaments"`
	Image        string  `json:"image"`
}

// CreateProfile maneja POST /profiles.
//
// @Summary Create a new profile
// @Tags Profiles
// @Accept json
// @Produce json
// @Param request body createProfileRequest true "Profile data"
// @Success 201 {object} domain.Profile
// @Failure 400 {object} errorResponse
// @Router /profiles [post]
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req createProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create profile request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	profile, err := h.profiles.Create(c.Request.Context(), service.CreateProfileInput{
		Name:        req.Name,
		Description: req.Description,
		Votes: domain.Votes{
			MBTI:      req.MBTI,
			Enneagram: req.Enneagram,
			Zodiac:    req.Zodiac,
		},
		Variant:      req.Variant,
		Tritype:      req.Tritype,
		Socionics:    req.Socionics,
		Sloan:        req.Sloan,
		Psyche:       req.Psyche,
		Temperaments: req.Temperaments,
		Image:        req.Image,
	})
	if err != nil {
		respondError(c, h.logger, err, "could not create profile")
		return
	}

	c.JSON(http.StatusCreated, profile)
}

// GetProfile maneja GET /profiles/:id y renderiza la vista HTML.
//
// @Summary Get profile by ID
// @Tags Profiles
// @Produce html
// @Param id path string true "Profile ID"
// @Success 200 {string} string "Profile rendered as HTML"
// @Failure 404 {string} string "Profile not found"
// @Router /profiles/{id} [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profiles.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, profileTemplate, gin.H{"profile": profile})
}

// GetDefaultProfile maneja GET /profiles y renderiza el primer perfil.
//
// @Summary Render the first profile, seeding one if the store is empty
// @Tags Profiles
// @Produce html
// @Success 200 {string} string "Profile rendered as HTML"
// @Failure 500 {object} errorResponse
// @Router /profiles [get]
func (h *ProfileHandler) GetDefaultProfile(c *gin.Context) {
	profile, err := h.profiles.Default(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, profileTemplate, gin.H{"profile": profile})
}

// GetProfileJSON maneja GET /api/profiles/:id.
//
// @Summary Get profile by ID as JSON
// @Tags Profiles
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} domain.Profile
// @Failure 404 {object} errorResponse
// @Router /api/profiles/{id} [get]
func (h *ProfileHandler) GetProfileJSON(c *gin.Context) {
	profile, err := h.profiles.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, "could not fetch profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) renderError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrProfileNotFound) {
		c.String(http.StatusNotFound, "Profile not found")
		return
	}
	respondError(c, h.logger, err, "could not fetch profile")
}
