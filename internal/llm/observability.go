package llm

import (
	"io"
	"log/slog"
)

// CallEvent records metadata about a single backend invocation.
type CallEvent struct {
	Provider  Provider
	Model     string
	Streamed  bool
	LatencyMs int64
	Success   bool
	ErrorCode string
	Usage     *Usage
}

// Observer receives events about backend calls for logging and metrics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes call events through slog.
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	attrs := []any{
		"provider", event.Provider,
		"model", event.Model,
		"streamed", event.Streamed,
		"latency_ms", event.LatencyMs,
	}
	if event.Usage != nil {
		attrs = append(attrs, "total_tokens", event.Usage.TotalTokens)
	}
	if !event.Success {
		o.logger.Warn("ai_call", append(attrs, "status", "err:"+event.ErrorCode)...)
		return
	}
	o.logger.Info("ai_call", append(attrs, "status", "ok")...)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
