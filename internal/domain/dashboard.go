package domain

import (
	"fmt"
	"time"
)

// Period selects the window the dashboard statistics cover
type Period string

const (
	PeriodToday Period = "aujourd'hui"
	PeriodWeek  Period = "semaine"
	PeriodMonth Period = "mois"
)

// Periods lists the selectable periods in display order
var Periods = []Period{PeriodToday, PeriodWeek, PeriodMonth}

// ParsePeriod returns the matching period, defaulting to today
func ParsePeriod(s string) Period {
	for _, p := range Periods {
		if string(p) == s {
			return p
		}
	}
	return PeriodToday
}

// Label is the human label shown in the period selector
func (p Period) Label() string {
	switch p {
	case PeriodWeek:
		return "Cette semaine"
	case PeriodMonth:
		return "Ce mois"
	default:
		return "Aujourd'hui"
	}
}

// Since returns the start of the period relative to now
func (p Period) Since(now time.Time) time.Time {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch p {
	case PeriodWeek:
		return midnight.AddDate(0, 0, -6)
	case PeriodMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	default:
		return midnight
	}
}

// ReservationStatus mirrors the status column of the reservations table
type ReservationStatus string

const (
	StatusAwaitingValidation ReservationStatus = "awaiting_validation"
	StatusAwaitingPayment    ReservationStatus = "awaiting_payment"
	StatusPaid               ReservationStatus = "paid"
	StatusCancelled          ReservationStatus = "cancelled"
)

// ReservationStats are the counters shown on the dashboard cards
type ReservationStats struct {
	Total              int64 `json:"total"`
	AwaitingValidation int64 `json:"en_attente_validation"`
	AwaitingPayment    int64 `json:"en_attente_paiement"`
	Paid               int64 `json:"paye"`
	Cancelled          int64 `json:"annule"`
}

// PendingReservation is a reservation waiting for a back-office decision
type PendingReservation struct {
	Activity       string    `json:"activite"`
	Date           time.Time `json:"date"`
	Participants   string    `json:"participants"`
	RemainingSeats string    `json:"places_restantes"`
	CustomerName   string    `json:"nom_client"`
}

// AuditEvent is one entry of the recent back-office activity feed
type AuditEvent struct {
	ID        int64     `json:"id"`
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	Subject   string    `json:"subject"`
	CreatedAt time.Time `json:"created_at"`
}

// Audit actions
const (
	ActionProviderCreated = "a ajouté un prestataire"
	ActionActivityCreated = "a ajouté une activité"
)

// HourlyPoint is one bucket of the reservations-per-hour chart
type HourlyPoint struct {
	Hour     string `json:"time"`
	Today    int64  `json:"today"`
	Previous int64  `json:"previous"`
}

// DashboardOverview aggregates everything the dashboard page renders
type DashboardOverview struct {
	Period        Period               `json:"period"`
	Stats         ReservationStats     `json:"stats"`
	Pending       []PendingReservation `json:"pending"`
	Recent        []AuditEvent         `json:"recent"`
	Hourly        []HourlyPoint        `json:"hourly"`
	ProviderCount int                  `json:"provider_count"`
	ActivityCount int                  `json:"activity_count"`
	Warnings      []string             `json:"warnings,omitempty"`
}

// EmptyHourlySeries returns 24 zeroed buckets labelled "00:00" to "23:00"
func EmptyHourlySeries() []HourlyPoint {
	points := make([]HourlyPoint, 24)
	for h := range points {
		points[h].Hour = fmt.Sprintf("%02d:00", h)
	}
	return points
}
