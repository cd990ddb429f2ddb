// Package ratelimit implementa limite de requisições por janela fixa.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Result descreve o estado da janela após uma requisição
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Limiter conta requisições por chave (normalmente o IP do cliente)
type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}

// MemoryLimiter é usado quando não há Redis configurado; vale apenas para um processo
type MemoryLimiter struct {
	max    int
	window time.Duration
	now    func() time.Time

	mu      sync.Mutex
	windows map[string]*memoryWindow
}

type memoryWindow struct {
	count   int
	resetAt time.Time
}

func NewMemoryLimiter(max int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		max:     max,
		window:  window,
		now:     time.Now,
		windows: make(map[string]*memoryWindow),
	}
}

func (l *MemoryLimiter) Allow(ctx context.Context, key string) (Result, error) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[key]
	if !ok || !now.Before(w.resetAt) {
		l.sweep(now)
		w = &memoryWindow{resetAt: now.Add(l.window)}
		l.windows[key] = w
	}
	w.count++

	return newResult(w.count, l.max, w.resetAt), nil
}

// sweep descarta janelas expiradas
func (l *MemoryLimiter) sweep(now time.Time) {
	for k, w := range l.windows {
		if !now.Before(w.resetAt) {
			delete(l.windows, k)
		}
	}
}

func newResult(count, max int, resetAt time.Time) Result {
	remaining := max - count
	if remaining < 0 {
		remaining = 0
	}
	return Result{
		Allowed:   count <= max,
		Limit:     max,
		Remaining: remaining,
		ResetAt:   resetAt,
	}
}
