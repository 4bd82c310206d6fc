package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema es idempotente; se ejecuta completo en cada arranque.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS profiles (
		id           TEXT PRIMARY KEY,
		name         TEXT NOT NULL,
		description  TEXT NOT NULL,
		mbti         TEXT,
		enneagram    TEXT,
		zodiac       TEXT,
		variant      TEXT NOT NULL DEFAULT '',
		tritype      INTEGER,
		socionics    TEXT NOT NULL DEFAULT '',
		sloan        TEXT NOT NULL DEFAULT '',
		psyche       TEXT NOT NULL DEFAULT '',
		temperaments TEXT NOT NULL DEFAULT '',
		image        TEXT NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL,
		updated_at   TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS comments (
		id         TEXT PRIMARY KEY,
		profile_id TEXT NOT NULL,
		user_id    TEXT NOT NULL,
		title      TEXT NOT NULL,
		text       TEXT NOT NULL,
		mbti       TEXT,
		enneagram  TEXT,
		zodiac     TEXT,
		likes      TEXT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS comments_profile_created_idx ON comments (profile_id, created_at DESC)`,
}

// Migrate crea las tablas e indices si no existen.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for i, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i, err)
		}
	}
	return nil
}
