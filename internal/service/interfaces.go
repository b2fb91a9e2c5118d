package service

import (
	"context"

	"backoffice/internal/domain"
)

// Gateway defines the remote booking API operations the back-office relies on
type Gateway interface {
	ListProviders(ctx context.Context) ([]domain.Provider, error)
	ListActivities(ctx context.Context) ([]domain.Activity, error)
	CreateProvider(ctx context.Context, req domain.CreateProviderRequest) (*domain.Provider, error)
	CreateActivity(ctx context.Context, req domain.CreateActivityRequest) (*domain.CreatedActivity, error)
}

// CatalogService defines the interface for provider and activity operations
type CatalogService interface {
	// LoadProviders refetches the providers list
	LoadProviders(ctx context.Context) State[domain.Provider]

	// LoadActivities refetches the activities list
	LoadActivities(ctx context.Context) State[domain.Activity]

	// Providers returns the providers list, loading it if it was never loaded
	Providers(ctx context.Context) State[domain.Provider]

	// Activities returns the activities list, loading it if it was never loaded
	Activities(ctx context.Context) State[domain.Activity]

	// FindActivity looks an activity up by its key
	FindActivity(ctx context.Context, key string) (*domain.Activity, error)

	// CreateProvider submits a new provider, then reloads the providers list
	CreateProvider(ctx context.Context, actor string, req domain.CreateProviderRequest) (*domain.Provider, error)

	// CreateActivity submits a new activity, then reloads the activities list
	CreateActivity(ctx context.Context, actor string, req domain.CreateActivityRequest) (*domain.CreatedActivity, error)
}

// DashboardService defines the interface for the dashboard overview
type DashboardService interface {
	// Overview gathers statistics, pending reservations and recent events for a period
	Overview(ctx context.Context, period domain.Period) (*domain.DashboardOverview, error)
}

// Services aggregates all service interfaces
type Services struct {
	Catalog   CatalogService
	Dashboard DashboardService
}
