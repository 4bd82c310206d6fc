package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger verifica la conectividad con el store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler responde liveness y readiness.
type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

type healthResponse struct {
	Status  string         `json:"status"`
	Details map[string]any `json:"details,omitempty"`
}

// Healthz maneja GET /healthz (sin base de datos).
func (h *HealthHandler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{Status: "ok"})
}

// Readyz maneja GET /readyz e incluye la conectividad con la base de datos.
func (h *HealthHandler) Readyz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	if h.db == nil {
		c.JSON(http.StatusServiceUnavailable, healthResponse{Status: "degraded", Details: map[string]any{"db": "not configured"}})
		return
	}
	if err := h.db.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, healthResponse{
			Status:  "degraded",
			Details: map[string]any{"db": err.Error()},
		})
		return
	}
	c.JSON(http.StatusOK, healthResponse{Status: "ready", Details: map[string]any{"db": "ok"}})
}
