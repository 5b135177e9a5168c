package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/2beens/gymrest/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=middleware_test

type loginChecker interface {
	IsLogged(ctx context.Context, token string) (bool, error)
}

type AuthMiddlewareHandler struct {
	loginChecker loginChecker
}

func NewAuthMiddlewareHandler(loginChecker loginChecker) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		loginChecker: loginChecker,
	}
}

// allowedPaths can be accessed without a session token
var allowedPaths = map[string]bool{
	"/":         true,
	"/version":  true,
	"/a/login":  true,
	"/a/logout": true,
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			if allowedPaths[r.URL.Path] || strings.HasPrefix(r.URL.Path, "/health") {
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			authToken := r.Header.Get("X-GYMREST-TOKEN")
			if authToken == "" {
				log.Tracef("[missing token] [auth middleware] %s: %s", r.Method, r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				return
			}

			isLogged, err := h.loginChecker.IsLogged(ctx, authToken)
			if err != nil {
				log.Tracef("[failed login check] => %s: %s: %s", r.Method, r.URL.Path, err)
				http.Error(w, "no can do", http.StatusUnauthorized)
				return
			}
			if !isLogged {
				log.Tracef("[invalid token] [auth middleware] %s: %s", r.Method, r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
