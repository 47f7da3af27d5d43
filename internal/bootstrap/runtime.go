package bootstrap

import (
	"context"

	"github.com/osse101/GemClicker_Go/internal/config"
	"github.com/osse101/GemClicker_Go/internal/logger"
	"github.com/osse101/GemClicker_Go/internal/scheduler"
	"github.com/osse101/GemClicker_Go/internal/worker"
)

// GameLoop is what the periodic jobs drive.
type GameLoop interface {
	worker.Stepper
	worker.Autosaver
}

// StartGameLoop starts the worker pool and schedules the tick and autosave
// jobs on it. Both are stopped by GracefulShutdown.
func StartGameLoop(ctx context.Context, cfg *config.Config, loop GameLoop) (*worker.Pool, *scheduler.Scheduler) {
	pool := worker.NewPool(ctx, cfg.WorkerCount, TickQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(cfg.TickInterval, worker.NewTickJob(loop))
	sched.Schedule(cfg.SaveInterval, worker.NewAutosaveJob(loop))

	logger.Info(LogMsgJobsScheduled,
		"tick_interval", cfg.TickInterval,
		"save_interval", cfg.SaveInterval,
		"workers", cfg.WorkerCount)
	return pool, sched
}
