package dashboard

import (
	"sync"
	"time"
)

// rateLimiter is a sliding-window limit keyed by session id.
type rateLimiter struct {
	mu       sync.Mutex
	limit    int
	window   time.Duration
	now      func() time.Time
	counters map[string][]time.Time
}

// newRateLimiter allows limit hits per window. If limit <= 0, allow always
// returns true.
func newRateLimiter(limit int, window time.Duration) *rateLimiter {
	if window <= 0 {
		window = time.Minute
	}
	return &rateLimiter{
		limit:    limit,
		window:   window,
		now:      time.Now,
		counters: make(map[string][]time.Time),
	}
}

// allow records a hit for key and reports whether it is within the limit.
func (rl *rateLimiter) allow(key string) bool {
	if rl.limit <= 0 {
		return true
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	cutoff := now.Add(-rl.window)

	// Prune old timestamps
	timestamps := rl.counters[key]
	pruned := timestamps[:0]
	for _, ts := range timestamps {
		if ts.After(cutoff) {
			pruned = append(pruned, ts)
		}
	}

	if len(pruned) >= rl.limit {
		rl.counters[key] = pruned
		return false
	}

	rl.counters[key] = append(pruned, now)
	return true
}

// forget drops a key, e.g. when its session is swept.
func (rl *rateLimiter) forget(key string) {
	rl.mu.Lock()
	delete(rl.counters, key)
	rl.mu.Unlock()
}
