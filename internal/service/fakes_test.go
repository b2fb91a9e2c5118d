package service

import (
	"context"
	"sync"
	"time"

	"backoffice/internal/domain"
)

type fakeGateway struct {
	mu           sync.Mutex
	providers    []domain.Provider
	activities   []domain.Activity
	listErr      error
	createErr    error
	listCalls    int
	createdNames []string
	createdCodes []string
}

func (f *fakeGateway) ListProviders(ctx context.Context) ([]domain.Provider, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]domain.Provider(nil), f.providers...), nil
}

func (f *fakeGateway) ListActivities(ctx context.Context) ([]domain.Activity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]domain.Activity(nil), f.activities...), nil
}

func (f *fakeGateway) CreateProvider(ctx context.Context, req domain.CreateProviderRequest) (*domain.Provider, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	p := domain.Provider{ID: "new", Name: req.Name, Email: req.Email, Phone: req.Phone, Company: req.Company}
	f.providers = append(f.providers, p)
	f.createdNames = append(f.createdNames, req.Name)
	return &p, nil
}

func (f *fakeGateway) CreateActivity(ctx context.Context, req domain.CreateActivityRequest) (*domain.CreatedActivity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.activities = append(f.activities, domain.Activity{ID: "a-new", Name: req.Name, Code: req.Code})
	f.createdNames = append(f.createdNames, req.Name)
	f.createdCodes = append(f.createdCodes, req.Code)
	return &domain.CreatedActivity{ID: "a-new"}, nil
}

type fakeAudit struct {
	mu     sync.Mutex
	events []domain.AuditEvent
	err    error
}

func (f *fakeAudit) Record(ctx context.Context, event *domain.AuditEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	event.ID = int64(len(f.events) + 1)
	event.CreatedAt = time.Now()
	f.events = append(f.events, *event)
	return nil
}

func (f *fakeAudit) Recent(ctx context.Context, limit int) ([]domain.AuditEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.AuditEvent, 0, limit)
	for i := len(f.events) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.events[i])
	}
	return out, nil
}

type fakeReservations struct {
	stats   domain.ReservationStats
	pending []domain.PendingReservation
	err     error
	since   time.Time
}

func (f *fakeReservations) Stats(ctx context.Context, since time.Time) (*domain.ReservationStats, error) {
	f.since = since
	if f.err != nil {
		return nil, f.err
	}
	s := f.stats
	return &s, nil
}

func (f *fakeReservations) Pending(ctx context.Context, limit int) ([]domain.PendingReservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.pending, nil
}

func (f *fakeReservations) Hourly(ctx context.Context, day time.Time) ([]domain.HourlyPoint, error) {
	if f.err != nil {
		return nil, f.err
	}
	points := domain.EmptyHourlySeries()
	points[10].Today = 3
	return points, nil
}
