package service

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// EventRecord captures lightweight execution telemetry for one handled chat
// event.
type EventRecord struct {
	Route     string
	UserID    int64
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
	StartedAt time.Time
}

// EventObserver receives handled-event records from the dispatcher.
type EventObserver interface {
	ObserveEvent(ctx context.Context, rec EventRecord)
}

// NoopEventObserver ignores all records.
type NoopEventObserver struct{}

func (NoopEventObserver) ObserveEvent(context.Context, EventRecord) {}

type logEventObserver struct {
	logger *slog.Logger
}

// NewLogEventObserver writes handled-event records to the provided writer.
func NewLogEventObserver(w io.Writer) EventObserver {
	if w == nil {
		return NoopEventObserver{}
	}
	return &logEventObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logEventObserver) ObserveEvent(ctx context.Context, rec EventRecord) {
	attrs := make([]any, 0, 10+len(rec.Fields)*2)
	attrs = append(attrs,
		"route", rec.Route,
		"user_id", rec.UserID,
		"duration_ms", rec.Duration.Milliseconds(),
		"success", rec.Success,
	)
	for k, v := range rec.Fields {
		attrs = append(attrs, k, v)
	}
	if rec.Err != nil {
		attrs = append(attrs, "error", rec.Err.Error())
		o.logger.ErrorContext(ctx, "chat_event", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "chat_event", attrs...)
}
