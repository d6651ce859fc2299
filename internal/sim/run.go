package sim

import (
	"context"
	"time"
)

// Run advances s once per tick until ctx is cancelled or ticks is closed.
// Each frame's dt is the wall-clock gap between consecutive ticks; the first
// tick only sets the reference time. onFrame, if set, sees every frame's
// events before the next tick is read.
func Run(ctx context.Context, s *Simulation, ticks <-chan time.Time, onFrame func([]Event)) error {
	var last time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now, ok := <-ticks:
			if !ok {
				return nil
			}
			if last.IsZero() {
				last = now
				continue
			}
			dt := durationSeconds(now.Sub(last))
			last = now
			events := s.Advance(dt)
			if onFrame != nil {
				onFrame(events)
			}
		}
	}
}
