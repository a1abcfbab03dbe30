package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// RateLimiter allows at most max requests per client within a sliding window.
// Clients are identified by the connection's remote host. X-Forwarded-For is
// only consulted when the server sits behind a trusted proxy.
type RateLimiter struct {
	max        int
	window     time.Duration
	trustProxy bool
	now        func() time.Time

	mu      sync.Mutex
	clients map[string][]time.Time
}

func NewRateLimiter(max int, window time.Duration, trustProxy bool) *RateLimiter {
	return &RateLimiter{
		max:        max,
		window:     window,
		trustProxy: trustProxy,
		now:        time.Now,
		clients:    make(map[string][]time.Time),
	}
}

func (rl *RateLimiter) allow(client string) bool {
	now := rl.now()
	cutoff := now.Add(-rl.window)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	hits := rl.clients[client][:0:0]
	for _, t := range rl.clients[client] {
		if t.After(cutoff) {
			hits = append(hits, t)
		}
	}

	if len(hits) >= rl.max {
		rl.clients[client] = hits
		return false
	}
	rl.clients[client] = append(hits, now)
	return true
}

// clientKey returns the address requests are counted against. Behind a
// trusted proxy that is the last X-Forwarded-For hop, the one the proxy
// itself appended; entries to its left are client-controlled.
func (rl *RateLimiter) clientKey(r *http.Request) string {
	if rl.trustProxy {
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			hops := strings.Split(fwd, ",")
			if last := strings.TrimSpace(hops[len(hops)-1]); last != "" {
				return last
			}
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(rl.clientKey(r)) {
			writeError(w, http.StatusTooManyRequests, "rate_limited", "too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}
