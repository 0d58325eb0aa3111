package usecase

import (
	"rental-admin/internal/data/repository"
	"rental-admin/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	User     UserService
	Customer CustomerService
	Audit    AuditService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		User:     NewUserService(repo.User, repo.Audit, config, log),
		Customer: NewCustomerService(repo.Customer, repo.User, repo.Audit, log),
		Audit:    NewAuditService(repo.Audit, log),
	}
}
