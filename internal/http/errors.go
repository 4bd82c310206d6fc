package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"profile-votes/internal/domain"
	"profile-votes/internal/service"
)

// errorResponse documenta el cuerpo de error comun.
type errorResponse struct {
	Error string `json:"error"`
}

// respondError traduce errores de servicio a status HTTP. Los errores no
// clasificados se consideran fallas del store y se registran.
func respondError(c *gin.Context, logger *zap.Logger, err error, fallback string) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
	case errors.Is(err, domain.ErrProfileNotFound), errors.Is(err, domain.ErrCommentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
	default:
		logger.Error(fallback, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
