package wire

import (
	"rental-admin/internal/adaptor"
	"rental-admin/pkg/middleware"
	"rental-admin/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireUser configures the user management routes
func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.With(middleware.AdminKey(config, log)).Route("/api/admin/users", func(r chi.Router) {
		r.Get("/", userHandler.List)       // GET /api/admin/users?page=1&per_page=10
		r.Post("/", userHandler.Create)    // POST /api/admin/users
		r.Get("/stats", userHandler.Stats) // GET /api/admin/users/stats

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", userHandler.Get)
			r.Put("/", userHandler.Update)
			r.Delete("/", userHandler.Delete)
			r.Patch("/status", userHandler.SetStatus)             // guarded: deactivation needs confirm + reason
			r.Patch("/role", userHandler.SetRole)                 // guarded: escalation needs reason
			r.Post("/reset-password", userHandler.ResetPassword)  // admin-issued temp password
			r.Post("/unlock", userHandler.Unlock)                 // clear lockout window
		})
	})
}
