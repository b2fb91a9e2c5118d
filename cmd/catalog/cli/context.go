package cli

import (
	"context"
	"fmt"

	"backoffice/internal/domain"
)

// lister is the part of the API client the commands use
type lister interface {
	ListProviders(ctx context.Context) ([]domain.Provider, error)
	ListActivities(ctx context.Context) ([]domain.Activity, error)
}

func withGateway(ctx context.Context, l lister) context.Context {
	return context.WithValue(ctx, gatewayKey, l)
}

func gatewayFrom(ctx context.Context) (lister, error) {
	l, ok := ctx.Value(gatewayKey).(lister)
	if !ok {
		return nil, fmt.Errorf("API client not initialized")
	}
	return l, nil
}
