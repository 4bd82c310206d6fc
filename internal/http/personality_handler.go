package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"profile-votes/internal/domain"
)

// PersonalityHandler expone el catalogo de personalidades.
type PersonalityHandler struct {
	catalog *domain.Catalog
}

func NewPersonalityHandler(catalog *domain.Catalog) *PersonalityHandler {
	return &PersonalityHandler{catalog: catalog}
}

type personalitiesResponse struct {
	MBTI      []string `json:"mbti"`
	Enneagram []string `json:"enneagram"`
	Zodiac    []string `json:"zodiac"`
}

// ListPersonalities maneja GET /personalities.
//
// @Summary Get available personalities
// @Tags Personalities
// @Produce json
// @Success 200 {object} personalitiesResponse
// @Router /personalities [get]
func (h *PersonalityHandler) ListPersonalities(c *gin.Context) {
	c.JSON(http.StatusOK, personalitiesResponse{
		MBTI:      h.catalog.MBTI(),
		Enneagram: h.catalog.Enneagram(),
		Zodiac:    h.catalog.Zodiac(),
	})
}
