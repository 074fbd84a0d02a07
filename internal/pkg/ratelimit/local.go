package ratelimit

import (
	"context"
	"math"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type localEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Local is the single-instance fallback used when Redis is not configured.
// Idle keys are evicted after the bucket TTL.
type Local struct {
	cfg   Config
	limit rate.Limit

	mu      sync.Mutex
	entries map[string]*localEntry
	swept   time.Time
	now     func() time.Time
}

func NewLocal(cfg Config) *Local {
	cfg.Normalize()
	return &Local{
		cfg:     cfg,
		limit:   rate.Every(cfg.RefillInterval / time.Duration(cfg.RefillTokens)),
		entries: make(map[string]*localEntry),
		now:     time.Now,
	}
}

func (l *Local) Allow(_ context.Context, key string) (Decision, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	e, ok := l.entries[key]
	if !ok {
		e = &localEntry{limiter: rate.NewLimiter(l.limit, l.cfg.Capacity)}
		l.entries[key] = e
	}
	e.lastSeen = now

	d := Decision{Limit: l.cfg.Capacity}
	r := e.limiter.ReserveN(now, 1)
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		d.RetryAfter = delay
	} else {
		d.Allowed = true
	}
	d.Remaining = int64(math.Max(0, math.Floor(e.limiter.TokensAt(now))))
	return d, nil
}

func (l *Local) sweep(now time.Time) {
	if now.Sub(l.swept) < l.cfg.TTL {
		return
	}
	for k, e := range l.entries {
		if now.Sub(e.lastSeen) > l.cfg.TTL {
			delete(l.entries, k)
		}
	}
	l.swept = now
}
