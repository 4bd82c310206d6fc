package http

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

const profileTemplate = "profile.html"

//go:embed templates/*.html
var templatesFS embed.FS

// Handlers agrupa los handlers que monta el router.
type Handlers struct {
	Profiles      *ProfileHandler
	Users         *UserHandler
	Comments      *CommentHandler
	Personalities *PersonalityHandler
	Health        *HealthHandler
}

// NewRouter configura el router de Gin con middlewares y rutas base.
func NewRouter(logger *zap.Logger, h Handlers) *gin.Engine {
	r := gin.New()

	r.Use(zapLoggerMiddleware(logger), gin.Recovery())
	r.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/profiles")
	})

	profiles := r.Group("/profiles")
	profiles.POST("", h.Profiles.CreateProfile)
	profiles.GET("", h.Profiles.GetDefaultProfile)
	profiles.GET("/:id", h.Profiles.GetProfile)
	profiles.POST("/:id/comments", h.Comments.CreateComment)
	profiles.GET("/:id/comments", h.Comments.ListComments)
	profiles.POST("/:id/comments/:commentId/like", h.Comments.ToggleLike)

	r.GET("/api/profiles/:id", h.Profiles.GetProfileJSON)

	users := r.Group("/users")
	users.POST("", h.Users.CreateUser)
	users.GET("", h.Users.ListUsers)

	r.GET("/personalities", h.Personalities.ListPersonalities)

	if h.Health != nil {
		r.GET("/healthz", h.Health.Healthz)
		r.GET("/readyz", h.Health.Readyz)
	}

	r.GET("/api-docs/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/api-docs/doc.json"))))

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
