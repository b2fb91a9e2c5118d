package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Schema statements applied by Migrate
var Schema = []string{
	`CREATE TABLE IF NOT EXISTS audit_events (
		id BIGSERIAL PRIMARY KEY,
		actor TEXT NOT NULL,
		action TEXT NOT NULL,
		subject TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_audit_events_created_at ON audit_events (created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS reservations (
		id BIGSERIAL PRIMARY KEY,
		activity_name TEXT NOT NULL,
		customer_name TEXT NOT NULL,
		participants TEXT NOT NULL DEFAULT '',
		remaining_seats TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL CHECK (status IN ('awaiting_validation', 'awaiting_payment', 'paid', 'cancelled')),
		starts_on DATE NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_reservations_created_at ON reservations (created_at)`,
}

// Tables lists the back-office tables, children first
var Tables = []string{"reservations", "audit_events"}

// Migrate applies Schema in one transaction
func (db *PostgresDB) Migrate(ctx context.Context) error {
	return pgx.BeginFunc(ctx, db.Pool, func(tx pgx.Tx) error {
		for _, stmt := range Schema {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("failed to apply %q: %w", Summary(stmt), err)
			}
		}
		return nil
	})
}

// Drop removes every back-office table
func (db *PostgresDB) Drop(ctx context.Context) error {
	return pgx.BeginFunc(ctx, db.Pool, func(tx pgx.Tx) error {
		for _, table := range Tables {
			if _, err := tx.Exec(ctx, "DROP TABLE IF EXISTS "+pgx.Identifier{table}.Sanitize()+" CASCADE"); err != nil {
				return fmt.Errorf("failed to drop %s: %w", table, err)
			}
		}
		return nil
	})
}

// Summary shortens a statement for logs
func Summary(stmt string) string {
	if len(stmt) > 50 {
		return stmt[:50] + "..."
	}
	return stmt
}
