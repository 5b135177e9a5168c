package middleware

import (
	"context"
	"net/http"

	"github.com/2beens/gymrest/internal/telemetry/metrics"

	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type RequestRateLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

// RateLimit protects the given route with a per-minute request allowance.
// A redis outage fails open, a throttled client just has to come back later.
func RateLimit(
	rateLimiter RequestRateLimiter,
	metrics *metrics.Manager,
	allowedPerMin int,
) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			routeName := "unknown"
			if route := mux.CurrentRoute(r); route != nil && route.GetName() != "" {
				routeName = route.GetName()
			}

			res, err := rateLimiter.Allow(r.Context(), "gymrest-ratelimit||"+routeName, redis_rate.PerMinute(allowedPerMin))
			if err != nil {
				log.Errorf("rate limiter for %s: %s", routeName, err)
				next.ServeHTTP(w, r)
				return
			}

			if res.Allowed <= 0 {
				metrics.CounterRateLimitedRequests.Inc()
				log.Warnf("rate limited request for %s, retry after %s", routeName, res.RetryAfter)
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
