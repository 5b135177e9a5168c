package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/gymrest/internal/telemetry/metrics"

	"github.com/gorilla/mux"
)

// responseWriter remembers the status code written by the handler
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func RequestMetrics(metrics *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			metrics.GaugeRequests.Inc()
			defer metrics.GaugeRequests.Dec()

			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			startTime := time.Now()
			next.ServeHTTP(rw, r)
			elapsed := time.Since(startTime)

			routeName := "unknown"
			if route := mux.CurrentRoute(r); route != nil && route.GetName() != "" {
				routeName = route.GetName()
			}
			statusCode := strconv.Itoa(rw.statusCode)

			metrics.CounterRequests.With(map[string]string{
				"method": r.Method,
				"status": statusCode,
			}).Inc()
			metrics.HistogramRequestDuration.With(map[string]string{
				"route":       routeName,
				"method":      r.Method,
				"status_code": statusCode,
			}).Observe(elapsed.Seconds())
		})
	}
}
