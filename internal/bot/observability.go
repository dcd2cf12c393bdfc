package bot

import (
	"fmt"
	"io"
	"time"

	"github.com/mwaldhauser/zeitbot/internal/domain"
)

// TurnEvent records metadata about a single handled conversation turn.
type TurnEvent struct {
	Intent     domain.Intent
	LatencyMs  int64
	MessageLen int
	SaveFailed bool
}

// Observer receives events about handled turns for logging and metrics.
type Observer interface {
	OnTurn(event TurnEvent)
}

// LogObserver writes turn events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnTurn(event TurnEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if event.SaveFailed {
		status = "err:save_failed"
	}
	fmt.Fprintf(o.w, "[%s] turn intent=%s latency_ms=%d msg_len=%d status=%s\n",
		ts, event.Intent, event.LatencyMs, event.MessageLen, status)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnTurn(TurnEvent) {}
