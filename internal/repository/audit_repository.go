package repository

import (
	"context"
	"fmt"

	"backoffice/internal/domain"
	"backoffice/pkg/database"
)

type AuditEventRepository struct {
	db *database.PostgresDB
}

func NewAuditEventRepository(db *database.PostgresDB) *AuditEventRepository {
	return &AuditEventRepository{db: db}
}

// Record inserts an audit event
func (r *AuditEventRepository) Record(ctx context.Context, event *domain.AuditEvent) error {
	query := `
		INSERT INTO audit_events (actor, action, subject)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.Pool.QueryRow(ctx, query, event.Actor, event.Action, event.Subject).
		Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record audit event: %w", err)
	}
	return nil
}

// Recent lists the latest audit events
func (r *AuditEventRepository) Recent(ctx context.Context, limit int) ([]domain.AuditEvent, error) {
	query := `
		SELECT id, actor, action, subject, created_at
		FROM audit_events
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`

	rows, err := r.db.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit events: %w", err)
	}
	defer rows.Close()

	events := make([]domain.AuditEvent, 0, limit)
	for rows.Next() {
		var e domain.AuditEvent
		if err := rows.Scan(&e.ID, &e.Actor, &e.Action, &e.Subject, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate audit events: %w", err)
	}

	return events, nil
}
