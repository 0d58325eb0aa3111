package repository

import (
	"rental-admin/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Customer CustomerRepository
	Audit    AuditRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Customer: NewCustomerRepository(db, log),
		Audit:    NewAuditRepository(db, log),
	}
}
