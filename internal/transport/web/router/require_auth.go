package router

import (
	"net/http"

	"github.com/BotGJ16/ContentVault/internal/domain"
)

func requireAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		address := domain.UserAddressFromContext(r.Context())
		if address == "" {
			logger := domain.LoggerFromContext(r.Context())
			logger.InfoContext(r.Context(), "attempt to use endpoint requiring auth without user address")
			writeJSONError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
