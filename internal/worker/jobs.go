package worker

import (
	"context"
)

// Stepper advances the game to the current time.
type Stepper interface {
	Step(ctx context.Context)
}

// Autosaver flushes the current game state to storage.
type Autosaver interface {
	Autosave(ctx context.Context) error
}

// TickJob runs one engine tick.
type TickJob struct {
	engine Stepper
}

// NewTickJob creates a TickJob
func NewTickJob(engine Stepper) *TickJob {
	return &TickJob{engine: engine}
}

// Name implements Job
func (j *TickJob) Name() string { return JobNameTick }

// Process implements Job
func (j *TickJob) Process(ctx context.Context) error {
	j.engine.Step(ctx)
	return nil
}

// AutosaveJob runs one periodic save. The engine logs failures itself, so the
// error is only returned for the pool's job-failure log.
type AutosaveJob struct {
	engine Autosaver
}

// NewAutosaveJob creates an AutosaveJob
func NewAutosaveJob(engine Autosaver) *AutosaveJob {
	return &AutosaveJob{engine: engine}
}

// Name implements Job
func (j *AutosaveJob) Name() string { return JobNameAutosave }

// Process implements Job
func (j *AutosaveJob) Process(ctx context.Context) error {
	return j.engine.Autosave(ctx)
}
