package providers

import (
	"fmt"
	"io"
	"time"
)

// CallEvent records metadata about a single provider lookup.
type CallEvent struct {
	Provider  string
	LatencyMs int64
	Fallback  bool // true when synthetic data was substituted
	Reason    string
}

// Observer receives events about provider calls for logging and metrics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes provider call events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if event.Fallback {
		status = "fallback:" + event.Reason
	}
	fmt.Fprintf(o.w, "[%s] provider_call provider=%s latency_ms=%d status=%s\n",
		ts, event.Provider, event.LatencyMs, status)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
