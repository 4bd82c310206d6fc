package service

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrRateLimited indica que la clave supero el maximo de acciones en la ventana.
var ErrRateLimited = errors.New("rate limited")

// RateLimiter limita la frecuencia de acciones por clave.
//
// Allow consume un cupo; Release lo devuelve cuando la accion no llego a
// completarse.
type RateLimiter interface {
	Allow(ctx context.Context, key string) bool
	Release(ctx context.Context, key string)
}

type memoryRateLimiter struct {
	mu     sync.Mutex
	window time.Duration
	max    int
	hits   map[string][]time.Time
	now    func() time.Time
}

// NewMemoryRateLimiter crea un rate limiter de ventana deslizante en memoria.
func NewMemoryRateLimiter(window time.Duration, max int) RateLimiter {
	if max <= 0 {
		max = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &memoryRateLimiter{
		window: window,
		max:    max,
		hits:   make(map[string][]time.Time),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (l *memoryRateLimiter) Allow(_ context.Context, key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	cutoff := now.Add(-l.window)
	entries := l.hits[key]
	kept := entries[:0]
	for _, ts := range entries {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	if len(kept) >= l.max {
		l.hits[key] = kept
		return false
	}
	kept = append(kept, now)
	l.hits[key] = kept
	return true
}

func (l *memoryRateLimiter) Release(_ context.Context, key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	entries := l.hits[key]
	switch len(entries) {
	case 0:
	case 1:
		delete(l.hits, key)
	default:
		l.hits[key] = entries[:len(entries)-1]
	}
}

type unlimited struct{}

func (unlimited) Allow(context.Context, string) bool { return true }
func (unlimited) Release(context.Context, string)    {}
