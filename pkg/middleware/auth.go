package middleware

import (
	"crypto/subtle"
	"net/http"

	"rental-admin/pkg/utils"

	"go.uber.org/zap"
)

// AdminKey gates the admin API behind a static key. Full session
// management lives in a separate identity service; this service only
// needs to know the caller is the dashboard backend-for-frontend.
func AdminKey(config *utils.Config, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if config.Admin.APIKey == "" {
				logger.Error("ADMIN_API_KEY is not configured, rejecting request",
					zap.String("path", r.URL.Path))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			key := r.Header.Get("X-API-Key")
			if key == "" {
				utils.ResponseUnauthorized(w, "Missing API key")
				return
			}

			if subtle.ConstantTimeCompare([]byte(key), []byte(config.Admin.APIKey)) != 1 {
				logger.Warn("Invalid API key",
					zap.String("path", r.URL.Path),
					zap.String("ip", r.RemoteAddr))
				utils.ResponseUnauthorized(w, "Invalid API key")
				return
			}

			// Actor identity rides along for audit trails
			ctx := r.Context()
			if actor := r.Header.Get("X-Actor-ID"); actor != "" {
				ctx = utils.SetActorContext(ctx, actor)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
