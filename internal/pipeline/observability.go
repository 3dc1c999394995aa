package pipeline

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// StageEvent captures lightweight execution telemetry for one pipeline stage.
type StageEvent struct {
	RunID      string
	Stage      string
	Duration   time.Duration
	Success    bool
	Violations int
	Err        error
}

// Observer receives stage execution events.
type Observer interface {
	ObserveStage(ctx context.Context, event StageEvent)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) ObserveStage(context.Context, StageEvent) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes stage events to the provided writer.
func NewLogObserver(w io.Writer) Observer {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logObserver) ObserveStage(ctx context.Context, event StageEvent) {
	attrs := []any{
		"run_id", event.RunID,
		"stage", event.Stage,
		"duration_ms", event.Duration.Milliseconds(),
		"success", event.Success,
		"violations", event.Violations,
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "pipeline_stage", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "pipeline_stage", attrs...)
}

func observerOrNoop(observers []Observer) Observer {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopObserver{}
}
