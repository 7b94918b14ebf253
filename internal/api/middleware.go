package api

import (
	"net"
	"net/http"
	"sync"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"github.com/lueurxax/tastelog/internal/platform/observability"
)

// clientLimiter keeps one token bucket per client host. Buckets idle for
// longer than limiterIdleTTL are dropped once the map grows past limiterSweepSize.
type clientLimiter struct {
	rps   rate.Limit
	burst int
	now   func() time.Time

	limiters   map[string]*clientBucket
	limitersMu sync.Mutex
}

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newClientLimiter(rps float64, burst int) *clientLimiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}

	if burst <= 0 {
		burst = 1
	}

	return &clientLimiter{
		rps:      limit,
		burst:    burst,
		now:      time.Now,
		limiters: make(map[string]*clientBucket),
	}
}

func (l *clientLimiter) allow(addr string) bool {
	key := clientKey(addr)
	now := l.now()

	l.limitersMu.Lock()

	bucket, ok := l.limiters[key]
	if !ok {
		if len(l.limiters) >= limiterSweepSize {
			l.evictIdle(now)
		}

		bucket = &clientBucket{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.limiters[key] = bucket
	}

	bucket.lastSeen = now

	l.limitersMu.Unlock()

	return bucket.limiter.AllowN(now, 1)
}

// evictIdle must be called with limitersMu held.
func (l *clientLimiter) evictIdle(now time.Time) {
	for key, bucket := range l.limiters {
		if now.Sub(bucket.lastSeen) > limiterIdleTTL {
			delete(l.limiters, key)
		}
	}
}

func (l *clientLimiter) size() int {
	l.limitersMu.Lock()
	defer l.limitersMu.Unlock()

	return len(l.limiters)
}

// clientKey strips the source port so all connections from one host share a bucket.
func clientKey(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}

	return host
}

func (h *Handler) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.limiter.allow(r.RemoteAddr) {
			observability.APIRateLimited.Inc()
			respondError(w, http.StatusTooManyRequests, codeRateLimited, "Too many requests, please slow down")

			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		h.logger.Debug().
			Str(logFieldRequestID, chimiddleware.GetReqID(r.Context())).
			Str(logFieldMethod, r.Method).
			Str(logFieldPath, r.URL.Path).
			Int(logFieldStatus, ww.Status()).
			Dur(logFieldDuration, time.Since(start)).
			Msg("api request")
	})
}
