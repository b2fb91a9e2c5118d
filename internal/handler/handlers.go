package handler

import (
	"backoffice/internal/container"
)

// Handlers groups every HTTP handler of the back-office
type Handlers struct {
	Dashboard  *DashboardHandler
	Provider   *ProviderHandler
	Activity   *ActivityHandler
	Navigation *NavigationHandler
	API        *APIHandler
	Health     *HealthHandler
}

// New builds all handlers around one renderer
func New(container *container.Container) (*Handlers, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}
	p := pages{container: container, renderer: renderer}

	return &Handlers{
		Dashboard:  &DashboardHandler{pages: p},
		Provider:   &ProviderHandler{pages: p},
		Activity:   &ActivityHandler{pages: p},
		Navigation: &NavigationHandler{pages: p},
		API:        NewAPIHandler(container),
		Health:     NewHealthHandler(container),
	}, nil
}
