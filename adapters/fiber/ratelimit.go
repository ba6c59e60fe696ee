package fiber

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"golang.org/x/time/rate"
)

const (
	defaultLoginRate  = rate.Limit(1) // replenish one attempt per second
	defaultLoginBurst = 5

	limiterIdleTTL = 10 * time.Minute
	limiterMaxSize = 10_000
)

// loginLimiter throttles login attempts per client IP. This replaces the
// fixed post-failure sleep some demo portals use: backoff belongs to the
// transport layer, not the authenticator.
type loginLimiter struct {
	mu      sync.Mutex
	clients map[string]*limiterEntry
	limit   rate.Limit
	burst   int
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newLoginLimiter(limit rate.Limit, burst int) *loginLimiter {
	return &loginLimiter{
		clients: make(map[string]*limiterEntry),
		limit:   limit,
		burst:   burst,
	}
}

// allow consumes one attempt for the given IP.
func (l *loginLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.clients[ip]
	if !ok {
		if len(l.clients) >= limiterMaxSize {
			l.pruneLocked()
		}
		entry = &limiterEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[ip] = entry
	}
	entry.lastSeen = time.Now()

	return entry.limiter.Allow()
}

// pruneLocked drops entries idle past the TTL. Caller must hold the lock.
func (l *loginLimiter) pruneLocked() {
	cutoff := time.Now().Add(-limiterIdleTTL)
	for ip, entry := range l.clients {
		if entry.lastSeen.Before(cutoff) {
			delete(l.clients, ip)
		}
	}
}

// limitLogins rejects callers that burn through their attempt budget.
func (a *Adapter) limitLogins(c fiber.Ctx) error {
	if !a.logins.allow(c.IP()) {
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error": "too many login attempts, please wait and try again",
		})
	}
	return c.Next()
}
