package bootstrap

import (
	"context"

	"github.com/osse101/GemClicker_Go/internal/logger"
	"github.com/osse101/GemClicker_Go/internal/scheduler"
	"github.com/osse101/GemClicker_Go/internal/server"
	"github.com/osse101/GemClicker_Go/internal/sse"
	"github.com/osse101/GemClicker_Go/internal/worker"
)

// FinalSaver writes the last save before exit.
type FinalSaver interface {
	Shutdown(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server     *server.Server
	Hub        *sse.Hub
	Scheduler  *scheduler.Scheduler
	Pool       *worker.Pool
	Game       FinalSaver
	CloseStore func()
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in this order:
// 1. SSE hub (ends open streams so the server can drain)
// 2. HTTP server (stop accepting new requests)
// 3. Scheduler and worker pool (no more ticks or autosaves)
// 4. Final save, then the save store
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	logger.Info(LogMsgShuttingDownServer)

	if components.Hub != nil {
		components.Hub.Stop()
	}

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			logger.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.Pool != nil {
		components.Pool.Stop()
	}

	if components.Game != nil {
		if err := components.Game.Shutdown(ctx); err != nil {
			logger.Error(LogMsgFinalSaveFailed, "error", err)
		}
	}

	if components.CloseStore != nil {
		components.CloseStore()
		logger.Info(LogMsgStoreClosed)
	}

	logger.Info(LogMsgServerStopped)
}
