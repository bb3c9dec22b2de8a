package watch

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Run drives the detector at the given interval until ctx is
// cancelled or a tick fails. The first tick fires after the first
// interval elapses, not immediately. Ticks run inline in this
// goroutine, so they never overlap; a tick that outlasts the interval
// delays the next one.
func (d *Detector) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	d.logger.Info("watching",
		zap.String("file", d.target),
		zap.Duration("interval", interval),
	)

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("watch stopped")
			return nil
		case <-ticker.C:
			if err := d.Tick(time.Now()); err != nil {
				return err
			}
		}
	}
}
