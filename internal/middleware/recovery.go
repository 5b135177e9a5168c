package middleware

import (
	"net/http"

	"github.com/2beens/gymrest/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

func PanicRecovery(metrics *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if r := recover(); r != nil {
					metrics.CounterHandleRequestPanic.Inc()
					log.Errorf("http handler panic: %v", r)
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
