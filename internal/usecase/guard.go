package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rental-admin/internal/data/entity"
	"rental-admin/internal/data/repository"
	"rental-admin/internal/rules"
	"rental-admin/pkg/utils"

	"go.uber.org/zap"
)

// enforceGuard rejects a guarded mutation until its preconditions hold:
// an explicit confirm for ConfirmRequired, a non-blank reason for
// ReasonRequired. The guard itself never blocks; this is where policy
// becomes enforcement.
func enforceGuard(outcome rules.Outcome, confirm bool, reason string) error {
	if outcome.ConfirmRequired && !confirm {
		return fmt.Errorf("confirmation required: %s", outcome.Message)
	}
	if outcome.ReasonRequired && strings.TrimSpace(reason) == "" {
		return fmt.Errorf("reason required: %s", outcome.Message)
	}
	return nil
}

// recordAudit writes the audit trail row for a guarded mutation.
// Best effort: a failed audit write is logged, not surfaced, so the
// already-committed mutation is not reported as failed.
func recordAudit(ctx context.Context, auditRepo repository.AuditRepository, log *zap.Logger,
	entityType, entityID, field, oldValue, newValue, reason string) {

	actor, ok := utils.GetActorFromContext(ctx)
	if !ok {
		actor = "unknown"
	}

	var reasonPtr *string
	if strings.TrimSpace(reason) != "" {
		reasonPtr = &reason
	}

	entry := &entity.AuditEntry{
		BaseSimple: entity.BaseSimple{
			ID:        utils.GenerateUUID(),
			CreatedAt: time.Now(),
		},
		ActorID:    actor,
		EntityType: entityType,
		EntityID:   entityID,
		Field:      field,
		OldValue:   oldValue,
		NewValue:   newValue,
		Reason:     reasonPtr,
	}

	if err := auditRepo.Create(ctx, entry); err != nil {
		log.Error("Failed to record audit entry",
			zap.Error(err),
			zap.String("entity_type", entityType),
			zap.String("entity_id", entityID),
			zap.String("field", field),
		)
	}
}
