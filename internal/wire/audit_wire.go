package wire

import (
	"rental-admin/internal/adaptor"
	"rental-admin/pkg/middleware"
	"rental-admin/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireAudit configures the audit trail routes
func wireAudit(
	r chi.Router,
	auditHandler *adaptor.AuditHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.With(middleware.AdminKey(config, log)).
		Get("/api/admin/audit", auditHandler.List)
}
