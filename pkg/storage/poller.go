package storage

import (
	"context"
	"time"
)

// Poller is the consistency backstop for the change bus: it invokes tick on
// a fixed interval while its view is mounted, so a dropped event costs at
// most one interval of staleness.
type Poller struct {
	interval time.Duration
	tick     func()
}

func NewPoller(interval time.Duration, tick func()) *Poller {
	return &Poller{interval: interval, tick: tick}
}

// Start runs the poll loop until ctx is cancelled. Cancellation is how an
// unmounting view keeps orphaned timers from acting on stale state.
func (p *Poller) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.tick()
			}
		}
	}()
}
