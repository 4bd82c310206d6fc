package service

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisAllowScript incrementa el contador de la ventana y fija su expiracion
// en el primer hit.
const redisAllowScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("EXPIRE", KEYS[1], ARGV[1])
end
return current
`

// redisReleaseScript devuelve un cupo sin bajar de cero ni tocar el TTL.
const redisReleaseScript = `
local current = tonumber(redis.call("GET", KEYS[1]) or "0")
if current > 0 then
  return redis.call("DECR", KEYS[1])
end
return 0
`

const defaultRedisTimeout = 500 * time.Millisecond

type redisEvaler interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

// redisRateLimiter es un limitador de ventana fija compartido entre replicas.
// Ante errores de Redis deja pasar la accion.
type redisRateLimiter struct {
	client  redisEvaler
	window  time.Duration
	max     int
	prefix  string
	timeout time.Duration
}

// NewRedisRateLimiter crea el limitador. prefix separa los contadores de cada
// accion (p. ej. "comments:rl:").
func NewRedisRateLimiter(client *redis.Client, prefix string, window time.Duration, max int) RateLimiter {
	if client == nil {
		return nil
	}
	if window < time.Second {
		window = time.Minute
	}
	if max <= 0 {
		max = 1
	}
	return &redisRateLimiter{
		client:  client,
		window:  window,
		max:     max,
		prefix:  prefix,
		timeout: defaultRedisTimeout,
	}
}

func (l *redisRateLimiter) key(userID string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(userID))
	if normalized == "" {
		return "", false
	}
	return l.prefix + normalized, true
}

func (l *redisRateLimiter) Allow(ctx context.Context, userID string) bool {
	if l == nil || l.client == nil {
		return true
	}
	key, ok := l.key(userID)
	if !ok {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	count, err := l.client.Eval(ctx, redisAllowScript, []string{key}, int(l.window/time.Second)).Int()
	if err != nil {
		return true
	}
	return count <= l.max
}

func (l *redisRateLimiter) Release(ctx context.Context, userID string) {
	if l == nil || l.client == nil {
		return
	}
	key, ok := l.key(userID)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	_ = l.client.Eval(ctx, redisReleaseScript, []string{key}).Err()
}
