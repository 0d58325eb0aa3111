package wire

import (
	"rental-admin/internal/adaptor"
	"rental-admin/pkg/middleware"
	"rental-admin/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireCustomer configures the customer profile routes
func wireCustomer(
	r chi.Router,
	customerHandler *adaptor.CustomerHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.With(middleware.AdminKey(config, log)).Route("/api/admin/customers", func(r chi.Router) {
		r.Get("/", customerHandler.List)
		r.Post("/", customerHandler.Create)
		r.Get("/stats", customerHandler.Stats)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", customerHandler.Get)
			r.Put("/", customerHandler.Update)
			r.Delete("/", customerHandler.Delete) // removes profile only, user stays

			r.Patch("/status", customerHandler.SetAccountStatus)      // guarded
			r.Patch("/verification", customerHandler.SetVerification) // guarded; notes on reject
			r.Patch("/loyalty", customerHandler.UpdateLoyalty)        // set | add
		})
	})
}
