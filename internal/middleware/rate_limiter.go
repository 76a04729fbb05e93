package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/ZACHARY2215/logistx-inventory-hub/internal/apierror"

	"github.com/gin-gonic/gin"
)

// ipLimiter is a fixed-window request counter per client IP. State lives in
// process memory, which is enough for a single-instance deployment and keeps
// the request hot path off Redis.
type ipLimiter struct {
	mu     sync.Mutex
	seen   map[string]*rateWindow
	limit  int
	window time.Duration
}

type rateWindow struct {
	count int
	reset time.Time
}

func newIPLimiter(limit int, window time.Duration) *ipLimiter {
	return &ipLimiter{
		seen:   make(map[string]*rateWindow),
		limit:  limit,
		window: window,
	}
}

// allow counts one request for ip and reports whether it is still under the
// limit, plus when the current window resets.
func (l *ipLimiter) allow(ip string, now time.Time) (bool, time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.seen[ip]
	if !ok || now.After(w.reset) {
		w = &rateWindow{reset: now.Add(l.window)}
		l.seen[ip] = w
	}
	w.count++
	return w.count <= l.limit, w.reset
}

// purgeExpired drops windows that have lapsed so IPs that never return do not
// accumulate forever.
func (l *ipLimiter) purgeExpired(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for ip, w := range l.seen {
		if now.After(w.reset) {
			delete(l.seen, ip)
		}
	}
}

const purgeInterval = 5 * time.Minute

// RateLimiter rejects clients exceeding limit requests per window with 429
// and a Retry-After header in seconds.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	l := newIPLimiter(limit, window)
	go func() {
		ticker := time.NewTicker(purgeInterval)
		defer ticker.Stop()
		for range ticker.C {
			l.purgeExpired(time.Now())
		}
	}()

	return func(c *gin.Context) {
		ok, reset := l.allow(c.ClientIP(), time.Now())
		if !ok {
			c.Header("Retry-After", strconv.Itoa(int(time.Until(reset).Seconds())+1))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Too many requests. Try again in a moment."))
			return
		}
		c.Next()
	}
}
