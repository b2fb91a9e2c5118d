package handler

import (
	"context"
	"net/http"
	"time"

	"backoffice/internal/container"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	container *container.Container
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(container *container.Container) *HealthHandler {
	return &HealthHandler{
		container: container,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Service   string            `json:"service"`
	Checks    map[string]string `json:"checks"`
}

// Check handles GET /health. Optional backends that are configured but
// unreachable mark the service as degraded; the response stays 200.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	logger := h.container.GetLogger()
	logger.Debug("Health check requested")

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   "1.0.0",
		Service:   "backoffice",
		Checks: map[string]string{
			"redis":    "disabled",
			"database": "disabled",
		},
	}

	if h.container.HasRedis() {
		response.Checks["redis"] = "ok"
		if err := h.container.RedisClient.Health(ctx); err != nil {
			logger.WithError(err).Warn("Redis health check failed")
			response.Checks["redis"] = "unreachable"
			response.Status = "degraded"
		}
	}

	if h.container.HasDatabase() {
		response.Checks["database"] = "ok"
		if err := h.container.DB.Health(ctx); err != nil {
			logger.WithError(err).Warn("Database health check failed")
			response.Checks["database"] = "unreachable"
			response.Status = "degraded"
		}
	}

	respondJSON(w, http.StatusOK, response)
}
