package cctv

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
	pinned   bool
}

// RateLimiterStore manages per-client rate limiters: client id -> rate limiter.
// Client ids arrive in request headers, so idle entries are swept.
type RateLimiterStore struct {
	limiters     map[string]*clientLimiter
	mu           sync.Mutex
	defaultRate  rate.Limit
	defaultBurst int
	now          func() time.Time
}

func NewRateLimiterStore(defaultRate rate.Limit, defaultBurst int) *RateLimiterStore {
	return &RateLimiterStore{
		limiters:     make(map[string]*clientLimiter),
		defaultRate:  defaultRate,
		defaultBurst: defaultBurst,
		now:          time.Now,
	}
}

func (s *RateLimiterStore) GetLimiter(clientID string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists := s.limiters[clientID]
	if !exists {
		entry = &clientLimiter{limiter: rate.NewLimiter(s.defaultRate, s.defaultBurst)}
		s.limiters[clientID] = entry
	}
	entry.lastSeen = s.now()
	return entry.limiter
}

// SetLimiter overrides the limits of one client. Overridden clients are
// never swept.
func (s *RateLimiterStore) SetLimiter(clientID string, clientRate rate.Limit, clientBurst int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limiters[clientID] = &clientLimiter{
		limiter:  rate.NewLimiter(clientRate, clientBurst),
		lastSeen: s.now(),
		pinned:   true,
	}
}

func (s *RateLimiterStore) Allow(clientID string) bool {
	return s.GetLimiter(clientID).Allow()
}

// Sweep drops default limiters idle for longer than idle and returns how
// many were dropped.
func (s *RateLimiterStore) Sweep(idle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-idle)
	dropped := 0
	for id, entry := range s.limiters {
		if !entry.pinned && entry.lastSeen.Before(cutoff) {
			delete(s.limiters, id)
			dropped++
		}
	}
	return dropped
}

func (s *RateLimiterStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.limiters)
}
