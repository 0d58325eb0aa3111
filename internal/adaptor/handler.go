package adaptor

import (
	"rental-admin/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	User       *UserHandler
	Customer   *CustomerHandler
	Transition *TransitionHandler
	Audit      *AuditHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		User:       NewUserHandler(service.User, log),
		Customer:   NewCustomerHandler(service.Customer, log),
		Transition: NewTransitionHandler(log),
		Audit:      NewAuditHandler(service.Audit, log),
	}
}
