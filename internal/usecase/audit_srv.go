package usecase

import (
	"context"
	"fmt"

	"rental-admin/internal/data/repository"
	"rental-admin/internal/dto/request"
	"rental-admin/internal/dto/response"

	"go.uber.org/zap"
)

type AuditService interface {
	GetEntries(ctx context.Context, entityType string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.AuditResponse], error)
}

type auditService struct {
	auditRepo repository.AuditRepository
	log       *zap.Logger
}

func NewAuditService(auditRepo repository.AuditRepository, log *zap.Logger) AuditService {
	return &auditService{
		auditRepo: auditRepo,
		log:       log,
	}
}

func (as *auditService) GetEntries(ctx context.Context, entityType string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.AuditResponse], error) {
	if entityType != "" && entityType != "user" && entityType != "customer" {
		return nil, fmt.Errorf("invalid entity type")
	}

	entries, err := as.auditRepo.FindAll(ctx, entityType, req.Limit(), req.Offset())
	if err != nil {
		as.log.Error("Failed to get audit entries", zap.Error(err), zap.String("entity_type", entityType))
		return nil, fmt.Errorf("failed to get audit entries")
	}

	total, err := as.auditRepo.CountAll(ctx, entityType)
	if err != nil {
		as.log.Error("Failed to count audit entries", zap.Error(err))
		return nil, fmt.Errorf("failed to count audit entries")
	}

	entryResponses := make([]response.AuditResponse, len(entries))
	for i, entry := range entries {
		entryResponses[i] = response.AuditToResponse(entry)
	}

	return response.NewPaginatedResponse(entryResponses, req.Page, req.Limit(), total), nil
}
