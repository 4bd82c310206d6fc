package config

import (
	"time"

	"github.com/caarlos0/env/v10"

	"profile-votes/internal/domain"
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort           string        `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL        string        `env:"DATABASE_URL,required,notEmpty"`
	DBMaxConns         int32         `env:"DB_MAX_CONNS" envDefault:"10"`
	RedisAddr          string        `env:"REDIS_ADDR"`
	RedisPassword      string        `env:"REDIS_PASSWORD"`
	RedisDB            int           `env:"REDIS_DB" envDefault:"0"`
	CommentRateLimit   int           `env:"COMMENT_RATE_LIMIT" envDefault:"20"`
	CommentRateWindow  time.Duration `env:"COMMENT_RATE_WINDOW" envDefault:"1m"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	SeedDefaultProfile bool          `env:"SEED_DEFAULT_PROFILE" envDefault:"true"`
	DefaultImageURL    string        `env:"DEFAULT_PROFILE_IMAGE"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if cfg.DefaultImageURL == "" {
		cfg.DefaultImageURL = domain.DefaultProfileImage
	}
	return &cfg, nil
}
