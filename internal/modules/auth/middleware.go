package auth

import (
	"net/http"
	"strings"
)

// RequireAdmin guards the back-office routes. Requests without a valid
// bearer token get 401.
func RequireAdmin(service Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token := strings.TrimPrefix(header, "Bearer ")
			if token == "" || token == header {
				respond(w, http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
				return
			}
			if err := service.Verify(token); err != nil {
				respond(w, http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
