package bootstrap

import (
	"context"
	"errors"
	"log/slog"

	"github.com/osse101/DoughGuardian_Go/internal/progression"
	"github.com/osse101/DoughGuardian_Go/internal/scheduler"
	"github.com/osse101/DoughGuardian_Go/internal/server"
	"github.com/osse101/DoughGuardian_Go/internal/worker"
)

// ShutdownComponents holds everything that needs a graceful stop.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server      *server.Server
	Scheduler   *scheduler.Scheduler
	Pool        *worker.Pool
	Progression progression.Service
	Events      *EventSystem
	CloseStore  func()
}

// GracefulShutdown stops components in dependency order:
// stop accepting requests, stop background jobs, save every session,
// flush events, then release the store.
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}
	if c.Scheduler != nil {
		c.Scheduler.Stop()
	}
	if c.Pool != nil {
		c.Pool.Stop()
	}
	if c.Progression != nil {
		logShutdownError("progression", c.Progression.Shutdown(ctx))
	}
	if c.Events != nil {
		logShutdownError("events", c.Events.Shutdown(ctx))
	}
	if c.CloseStore != nil {
		c.CloseStore()
	}

	slog.Info(LogMsgServerStopped)
}

func logShutdownError(component string, err error) {
	if err != nil {
		slog.Error(LogMsgComponentShutdownFailed, "component", component, "error", err)
	}
}

func joinErrors(errs []error) error {
	return errors.Join(errs...)
}
