package wire

import (
	"rental-admin/internal/adaptor"
	"rental-admin/pkg/middleware"
	"rental-admin/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireTransition exposes the transition guard evaluation endpoint
func wireTransition(
	r chi.Router,
	transitionHandler *adaptor.TransitionHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.With(middleware.AdminKey(config, log)).
		Post("/api/admin/transitions/evaluate", transitionHandler.Evaluate)
}
