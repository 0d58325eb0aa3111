package adaptor

import (
	"net/http"

	"rental-admin/internal/dto/request"
	"rental-admin/internal/usecase"
	"rental-admin/pkg/utils"

	"go.uber.org/zap"
)

type AuditHandler struct {
	service usecase.AuditService
	log     *zap.Logger
}

func NewAuditHandler(service usecase.AuditService, log *zap.Logger) *AuditHandler {
	return &AuditHandler{
		service: service,
		log:     log,
	}
}

// List handles GET /api/admin/audit?entity=user|customer&page=1&per_page=10
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	entries, err := h.service.GetEntries(r.Context(), query.Get("entity"), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get audit entries")
		return
	}

	utils.ResponseSuccess(w, "Audit entries retrieved successfully", entries)
}
