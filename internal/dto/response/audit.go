package response

import (
	"time"

	"rental-admin/internal/data/entity"
)

type AuditResponse struct {
	ID         string    `json:"id"`
	ActorID    string    `json:"actor_id"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	Field      string    `json:"field"`
	OldValue   string    `json:"old_value"`
	NewValue   string    `json:"new_value"`
	Reason     *string   `json:"reason,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func AuditToResponse(entry *entity.AuditEntry) AuditResponse {
	return AuditResponse{
		ID:         entry.ID.String(),
		ActorID:    entry.ActorID,
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		Field:      entry.Field,
		OldValue:   entry.OldValue,
		NewValue:   entry.NewValue,
		Reason:     entry.Reason,
		CreatedAt:  entry.CreatedAt,
	}
}
