package repository

import (
	"context"
	"fmt"
	"time"

	"backoffice/internal/domain"
	"backoffice/pkg/database"
)

type ReservationStatsRepository struct {
	db *database.PostgresDB
}

func NewReservationStatsRepository(db *database.PostgresDB) *ReservationStatsRepository {
	return &ReservationStatsRepository{db: db}
}

// Stats counts reservations by status
func (r *ReservationStatsRepository) Stats(ctx context.Context, since time.Time) (*domain.ReservationStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'awaiting_validation'),
			COUNT(*) FILTER (WHERE status = 'awaiting_payment'),
			COUNT(*) FILTER (WHERE status = 'paid'),
			COUNT(*) FILTER (WHERE status = 'cancelled')
		FROM reservations
		WHERE created_at >= $1
	`

	var stats domain.ReservationStats
	err := r.db.Pool.QueryRow(ctx, query, since).Scan(
		&stats.Total,
		&stats.AwaitingValidation,
		&stats.AwaitingPayment,
		&stats.Paid,
		&stats.Cancelled,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to count reservations: %w", err)
	}
	return &stats, nil
}

// Pending lists reservations awaiting validation
func (r *ReservationStatsRepository) Pending(ctx context.Context, limit int) ([]domain.PendingReservation, error) {
	query := `
		SELECT activity_name, starts_on, participants, remaining_seats, customer_name
		FROM reservations
		WHERE status = 'awaiting_validation'
		ORDER BY starts_on, id
		LIMIT $1
	`

	rows, err := r.db.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending reservations: %w", err)
	}
	defer rows.Close()

	pending := make([]domain.PendingReservation, 0, limit)
	for rows.Next() {
		var p domain.PendingReservation
		if err := rows.Scan(&p.Activity, &p.Date, &p.Participants, &p.RemainingSeats, &p.CustomerName); err != nil {
			return nil, fmt.Errorf("failed to scan pending reservation: %w", err)
		}
		pending = append(pending, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pending reservations: %w", err)
	}

	return pending, nil
}

// Hourly returns 24 buckets comparing day with the previous day. Buckets are
// hour offsets from local midnight, so the database time zone does not matter.
func (r *ReservationStatsRepository) Hourly(ctx context.Context, day time.Time) ([]domain.HourlyPoint, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	query := `
		SELECT
			FLOOR(EXTRACT(EPOCH FROM (created_at - $1::timestamptz)) / 3600)::int AS offset_hours,
			COUNT(*)
		FROM reservations
		WHERE created_at >= $2 AND created_at < $3
		GROUP BY offset_hours
	`

	rows, err := r.db.Pool.Query(ctx, query, start, start.AddDate(0, 0, -1), start.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to query hourly reservations: %w", err)
	}
	defer rows.Close()

	points := domain.EmptyHourlySeries()
	for rows.Next() {
		var offset int
		var count int64
		if err := rows.Scan(&offset, &count); err != nil {
			return nil, fmt.Errorf("failed to scan hourly bucket: %w", err)
		}
		switch {
		case offset >= 0 && offset < 24:
			points[offset].Today = count
		case offset >= -24 && offset < 0:
			points[offset+24].Previous = count
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate hourly buckets: %w", err)
	}

	return points, nil
}
