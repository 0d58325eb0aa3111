package adaptor

import (
	"net/http"

	"rental-admin/internal/dto/request"
	"rental-admin/internal/rules"
	"rental-admin/pkg/utils"

	"go.uber.org/zap"
)

// TransitionHandler exposes the guard so the dashboard can ask whether
// a proposed change needs confirmation before rendering its dialog.
// The guard is pure, so there is no service behind this handler.
type TransitionHandler struct {
	log *zap.Logger
}

func NewTransitionHandler(log *zap.Logger) *TransitionHandler {
	return &TransitionHandler{log: log}
}

// Evaluate handles POST /api/admin/transitions/evaluate
func (h *TransitionHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req request.EvaluateTransitionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if errs := utils.ValidateStruct(&req); len(errs) > 0 {
		utils.ResponseBadRequest(w, "validation failed", errs)
		return
	}

	outcome := rules.EvaluateTransition(req.Entity, req.Field, req.OldValue, req.NewValue)

	utils.ResponseSuccess(w, "Transition evaluated", outcome)
}
