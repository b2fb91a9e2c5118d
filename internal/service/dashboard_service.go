package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"backoffice/internal/domain"
	"backoffice/internal/repository"
	"backoffice/pkg/logger"
)

const (
	pendingLimit = 10
	recentLimit  = 8
)

type dashboardService struct {
	catalog      CatalogService
	reservations repository.ReservationRepository
	audit        repository.AuditRepository
	now          func() time.Time
	logger       *logger.Logger
}

// NewDashboardService creates the dashboard service. Repositories may be nil
// when no database is configured; their sections are then left empty.
func NewDashboardService(catalog CatalogService, reservations repository.ReservationRepository, audit repository.AuditRepository, logger *logger.Logger) DashboardService {
	return &dashboardService{
		catalog:      catalog,
		reservations: reservations,
		audit:        audit,
		now:          time.Now,
		logger:       logger,
	}
}

// Overview runs every section concurrently. A failing section is reported as
// a warning instead of failing the page.
func (s *dashboardService) Overview(ctx context.Context, period domain.Period) (*domain.DashboardOverview, error) {
	now := s.now()
	overview := &domain.DashboardOverview{
		Period:  period,
		Pending: []domain.PendingReservation{},
		Recent:  []domain.AuditEvent{},
		Hourly:  domain.EmptyHourlySeries(),
	}

	var (
		stats    *domain.ReservationStats
		pending  []domain.PendingReservation
		recent   []domain.AuditEvent
		hourly   []domain.HourlyPoint
		warnings = make([]string, 6)
	)

	g, gctx := errgroup.WithContext(ctx)

	if s.reservations != nil {
		g.Go(func() error {
			var err error
			if stats, err = s.reservations.Stats(gctx, period.Since(now)); err != nil {
				warnings[0] = s.warn(err, "stats", "Statistiques indisponibles")
			}
			return nil
		})
		g.Go(func() error {
			var err error
			if pending, err = s.reservations.Pending(gctx, pendingLimit); err != nil {
				warnings[1] = s.warn(err, "pending", "Réservations en attente indisponibles")
			}
			return nil
		})
		g.Go(func() error {
			var err error
			if hourly, err = s.reservations.Hourly(gctx, now); err != nil {
				warnings[2] = s.warn(err, "hourly", "Graphique indisponible")
			}
			return nil
		})
	}

	if s.audit != nil {
		g.Go(func() error {
			var err error
			if recent, err = s.audit.Recent(gctx, recentLimit); err != nil {
				warnings[3] = s.warn(err, "recent", "Activité récente indisponible")
			}
			return nil
		})
	}

	g.Go(func() error {
		st := s.catalog.Providers(gctx)
		if st.Err != nil {
			warnings[4] = s.warn(st.Err, "providers", "Prestataires indisponibles")
		}
		overview.ProviderCount = len(st.Items)
		return nil
	})
	g.Go(func() error {
		st := s.catalog.Activities(gctx)
		if st.Err != nil {
			warnings[5] = s.warn(st.Err, "activities", "Activités indisponibles")
		}
		overview.ActivityCount = len(st.Items)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if stats != nil {
		overview.Stats = *stats
	}
	if pending != nil {
		overview.Pending = pending
	}
	if recent != nil {
		overview.Recent = recent
	}
	if hourly != nil {
		overview.Hourly = hourly
	}
	for _, w := range warnings {
		if w != "" {
			overview.Warnings = append(overview.Warnings, w)
		}
	}

	return overview, nil
}

func (s *dashboardService) warn(err error, section, message string) string {
	s.logger.WithError(err).WithField("section", section).Warn("Dashboard section failed")
	return message
}
