package mw

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/MrSnakeDoc/faves/internal/utils"
)

const (
	defaultIdleTTL = 15 * time.Minute
	sweepEvery     = time.Minute
)

// RateLimitConfig configures a token bucket per client IP.
type RateLimitConfig struct {
	Burst      int
	PerMinute  int
	MaxClients int           // sweep idle clients early past this many
	IdleTTL    time.Duration // clients unseen for this long are forgotten
	TrustProxy bool
	Now        func() time.Time
}

type tokens struct {
	left     float64
	refilled time.Time
	seen     time.Time
}

type clientLimiter struct {
	cfg      RateLimitConfig
	perSec   float64
	capacity float64

	mu        sync.Mutex
	clients   map[string]*tokens
	lastSweep time.Time
}

func newClientLimiter(cfg RateLimitConfig) *clientLimiter {
	cfg.Burst = max(cfg.Burst, 1)
	cfg.PerMinute = max(cfg.PerMinute, 1)
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = defaultIdleTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &clientLimiter{
		cfg:       cfg,
		perSec:    float64(cfg.PerMinute) / 60,
		capacity:  float64(cfg.Burst),
		clients:   make(map[string]*tokens),
		lastSweep: cfg.Now(),
	}
}

// take spends one token for ip. When none is left it returns the seconds
// until the next one.
func (l *clientLimiter) take(ip string, now time.Time) (remaining int, retryAfter int, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	full := l.cfg.MaxClients > 0 && len(l.clients) >= l.cfg.MaxClients
	if full || now.Sub(l.lastSweep) >= sweepEvery {
		l.sweep(now)
	}

	t, found := l.clients[ip]
	if !found {
		t = &tokens{left: l.capacity, refilled: now}
		l.clients[ip] = t
	}
	t.seen = now

	if dt := now.Sub(t.refilled).Seconds(); dt > 0 {
		t.left = math.Min(l.capacity, t.left+dt*l.perSec)
		t.refilled = now
	}

	if t.left < 1 {
		wait := int(math.Ceil((1 - t.left) / l.perSec))
		return 0, max(wait, 1), false
	}
	t.left--
	return int(t.left), 0, true
}

func (l *clientLimiter) sweep(now time.Time) {
	for ip, t := range l.clients {
		if now.Sub(t.seen) > l.cfg.IdleTTL {
			delete(l.clients, ip)
		}
	}
	l.lastSweep = now
}

// RateLimit answers 429 once a client has spent its burst. Tokens come back
// at PerMinute per minute.
func RateLimit(cfg RateLimitConfig) func(http.Handler) http.Handler {
	l := newClientLimiter(cfg)
	limit := strconv.Itoa(l.cfg.Burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := utils.ClientIP(r, l.cfg.TrustProxy)
			remaining, retryAfter, ok := l.take(ip, l.cfg.Now())

			h := w.Header()
			h.Set("X-RateLimit-Limit", limit)
			h.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			if !ok {
				h.Set("Retry-After", strconv.Itoa(retryAfter))
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
