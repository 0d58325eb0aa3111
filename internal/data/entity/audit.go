package entity

// AuditEntry records a guarded mutation: who changed what, from which
// value to which, and the reason when one was required.
type AuditEntry struct {
	BaseSimple
	ActorID    string  `db:"actor_id"`
	EntityType string  `db:"entity_type"`
	EntityID   string  `db:"entity_id"`
	Field      string  `db:"field"`
	OldValue   string  `db:"old_value"`
	NewValue   string  `db:"new_value"`
	Reason     *string `db:"reason"`
}
