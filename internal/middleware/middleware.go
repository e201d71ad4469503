package middleware

import (
	"context"
	"net/http"

	"github.com/agricare/agri-backend/internal/utils"
)

// SessionReader resolves the authenticated email from a request, if any.
type SessionReader interface {
	Current(r *http.Request) (string, bool)
}

// RequireSession gates a route on a valid session cookie. A missing or
// invalid session redirects to the landing page rather than returning 401,
// matching the browser-flow contract of the frontend.
func RequireSession(sessions SessionReader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, ok := sessions.Current(r)
			if !ok {
				http.Redirect(w, r, "/", http.StatusFound)
				return
			}

			ctx := context.WithValue(r.Context(), utils.ContextEmailKey, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CORS echoes the origin back only if it's on the configured allow-list.
// Credentials are allowed because the session rides in a cookie.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if _, ok := allowed[origin]; ok {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Vary", "Origin") // important for caches
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Set("Access-Control-Allow-Methods",
					"GET, POST, PUT, PATCH, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers",
					"Content-Type, Authorization")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
