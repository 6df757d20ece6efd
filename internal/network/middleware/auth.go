package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rudracore/client-portal/internal/helpers"
	"github.com/rudracore/client-portal/internal/logger"
	"github.com/rudracore/client-portal/internal/services"
)

// Authenticator exchanges the bearer token for a verified identity on
// every request. No ambient session state, the token is the only input.
func Authenticator(i services.IdentityService) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" {
				unauthorized(w)
				return
			}

			identity, err := i.Authorize(r.Context(), token)
			if err != nil {
				logger.Warn("Failed to authorize request:", err)
				unauthorized(w)
				return
			}

			h.ServeHTTP(w, r.WithContext(helpers.WithIdentity(r.Context(), *identity)))
		})
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"}); err != nil {
		logger.Error("Failed to encode JSON response:", err)
	}
}
