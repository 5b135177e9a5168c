package middleware

import (
	"net/http"
	"strings"
)

var allowedOrigins = map[string]bool{
	"https://gymrest.2beens.online":     true,
	"https://www.gymrest.2beens.online": true,
	"http://localhost:3000":             true,
	"http://localhost:8080":             true,
}

// allowedUserAgentPrefixes covers the mobile client and local tooling,
// which send no Origin header at all
var allowedUserAgentPrefixes = []string{
	"GymRest/1",
	"curl/",
	"test-agent",
}

func Cors() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			userAgent := r.Header.Get("User-Agent")

			switch {
			case allowedOrigins[origin]:
				w.Header().Set("Access-Control-Allow-Origin", origin)
			case userAgentAllowed(userAgent):
				w.Header().Set("Access-Control-Allow-Origin", "*")
			default:
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}

			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization, X-GYMREST-TOKEN")

			next.ServeHTTP(w, r)
		})
	}
}

func userAgentAllowed(userAgent string) bool {
	for _, prefix := range allowedUserAgentPrefixes {
		if strings.HasPrefix(userAgent, prefix) {
			return true
		}
	}
	return false
}
