package repository

import (
	"context"
	"fmt"

	"rental-admin/internal/data/entity"
	"rental-admin/pkg/database"

	"go.uber.org/zap"
)

type AuditRepository interface {
	Create(ctx context.Context, entry *entity.AuditEntry) error
	FindAll(ctx context.Context, entityType string, limit, offset int) ([]*entity.AuditEntry, error)
	CountAll(ctx context.Context, entityType string) (int64, error)
}

type auditRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAuditRepository(db database.PgxIface, log *zap.Logger) AuditRepository {
	return &auditRepository{
		db:  db,
		log: log,
	}
}

func (ar *auditRepository) Create(ctx context.Context, entry *entity.AuditEntry) error {
	query := `
		INSERT INTO audit_entries (id, actor_id, entity_type, entity_id, field,
		                          old_value, new_value, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := ar.db.Exec(ctx, query,
		entry.ID,
		entry.ActorID,
		entry.EntityType,
		entry.EntityID,
		entry.Field,
		entry.OldValue,
		entry.NewValue,
		entry.Reason,
		entry.CreatedAt,
	)

	if err != nil {
		ar.log.Error("Failed to create audit entry",
			zap.Error(err),
			zap.String("entity_type", entry.EntityType),
			zap.String("entity_id", entry.EntityID),
			zap.String("field", entry.Field),
		)
		return fmt.Errorf("create audit entry: %w", err)
	}

	return nil
}

func (ar *auditRepository) FindAll(ctx context.Context, entityType string, limit, offset int) ([]*entity.AuditEntry, error) {
	query := `
		SELECT id, actor_id, entity_type, entity_id, field, old_value, new_value, reason, created_at
		FROM audit_entries
	`
	var args []any
	if entityType != "" {
		query += ` WHERE entity_type = $1`
		args = append(args, entityType)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := ar.db.Query(ctx, query, args...)
	if err != nil {
		ar.log.Error("Failed to get audit entries",
			zap.Error(err),
			zap.String("entity_type", entityType),
		)
		return nil, fmt.Errorf("find audit entries: %w", err)
	}
	defer rows.Close()

	var entries []*entity.AuditEntry
	for rows.Next() {
		var entry entity.AuditEntry
		err := rows.Scan(
			&entry.ID,
			&entry.ActorID,
			&entry.EntityType,
			&entry.EntityID,
			&entry.Field,
			&entry.OldValue,
			&entry.NewValue,
			&entry.Reason,
			&entry.CreatedAt,
		)
		if err != nil {
			ar.log.Error("Failed to scan audit row", zap.Error(err))
			return nil, fmt.Errorf("scan audit row: %w", err)
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		ar.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate audit rows: %w", err)
	}

	return entries, nil
}

func (ar *auditRepository) CountAll(ctx context.Context, entityType string) (int64, error) {
	query := `SELECT COUNT(*) FROM audit_entries`
	var args []any
	if entityType != "" {
		query += ` WHERE entity_type = $1`
		args = append(args, entityType)
	}

	var count int64
	err := ar.db.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		ar.log.Error("Database error counting audit entries", zap.Error(err))
		return 0, fmt.Errorf("count audit entries: %w", err)
	}

	return count, nil
}
