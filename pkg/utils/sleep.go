package utils

import (
	"context"
	"time"
)

// Sleep waits for d or until ctx is done, whichever comes first. It
// returns ctx.Err() when the wait was cut short.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	select {
	case <-ctx.Done():
		if !timer.Stop() {
			<-timer.C
		}
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Sleeper is a replaceable wait, so tests can record delays instead of
// sitting through them
type Sleeper func(ctx context.Context, d time.Duration) error
