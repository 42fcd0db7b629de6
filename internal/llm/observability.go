package llm

import (
	"context"
	"log/slog"
)

// LLMCallEvent describes one Generate call once it has finished, retries
// included.
type LLMCallEvent struct {
	Task      TaskType
	Provider  Provider
	Model     string
	LatencyMs int64
	Attempts  int
	Success   bool
	ErrorCode string
}

// Observer is told about every finished Generate call.
type Observer interface {
	OnCallComplete(event LLMCallEvent)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(LLMCallEvent)

func (f ObserverFunc) OnCallComplete(event LLMCallEvent) { f(event) }

// NoopObserver drops events. Clients fall back to it when given nil.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(LLMCallEvent) {}

// LogObserver writes an llm_call record per event. Failed calls log at warn
// with the error code; guidance still renders from the fallback library.
type LogObserver struct {
	logger *slog.Logger
}

func NewLogObserver(logger *slog.Logger) *LogObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogObserver{logger: logger}
}

func (o *LogObserver) OnCallComplete(event LLMCallEvent) {
	attrs := []slog.Attr{
		slog.String("task", string(event.Task)),
		slog.String("provider", string(event.Provider)),
		slog.String("model", event.Model),
		slog.Int64("latency_ms", event.LatencyMs),
		slog.Int("attempts", event.Attempts),
	}
	if event.Success {
		o.logger.LogAttrs(context.Background(), slog.LevelInfo, "llm_call", append(attrs, slog.String("status", "ok"))...)
		return
	}
	o.logger.LogAttrs(context.Background(), slog.LevelWarn, "llm_call", append(attrs, slog.String("status", "err:"+event.ErrorCode))...)
}
