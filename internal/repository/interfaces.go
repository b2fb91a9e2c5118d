package repository

import (
	"context"
	"time"

	"backoffice/internal/domain"
)

// AuditRepository defines the interface for the back-office activity feed
type AuditRepository interface {
	// Record appends an event and fills its ID and CreatedAt
	Record(ctx context.Context, event *domain.AuditEvent) error

	// Recent returns the latest events, newest first
	Recent(ctx context.Context, limit int) ([]domain.AuditEvent, error)
}

// ReservationRepository defines the interface for reservation statistics
type ReservationRepository interface {
	// Stats counts reservations created since the given instant, by status
	Stats(ctx context.Context, since time.Time) (*domain.ReservationStats, error)

	// Pending returns reservations awaiting validation, soonest first
	Pending(ctx context.Context, limit int) ([]domain.PendingReservation, error)

	// Hourly buckets reservations created on day and on the day before by hour
	Hourly(ctx context.Context, day time.Time) ([]domain.HourlyPoint, error)
}

// Repositories aggregates all repository interfaces
type Repositories struct {
	Audit       AuditRepository
	Reservation ReservationRepository
}
