package app

import (
	"context"
	"log/slog"

	"github.com/JawandS/WbgNews/internal/api"
	"github.com/JawandS/WbgNews/internal/state"
)

// HealthChecker is implemented by *api.Service.
type HealthChecker interface {
	Health(ctx context.Context) (api.HealthStatus, error)
}

// CheckHealth probes the API once and records the outcome. It never fails:
// the result is informational only.
func CheckHealth(ctx context.Context, checker HealthChecker, store *state.Store, logger *slog.Logger) {
	status, err := checker.Health(ctx)
	if store != nil {
		store.SetHealth(status, err)
	}
	if err != nil {
		logger.Warn("api health check failed", slog.Any("error", err))
		return
	}
	logger.Info("api health check",
		slog.String("status", status.Status),
		slog.String("service", status.Service),
		slog.String("timestamp", status.Timestamp))
}

// startHealthCheck runs CheckHealth in the background.
func startHealthCheck(ctx context.Context, checker HealthChecker, store *state.Store, logger *slog.Logger) {
	go CheckHealth(ctx, checker, store, logger)
}
