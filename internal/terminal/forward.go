package terminal

import (
	"context"
	"os"
)

// forward turns raw signals into coalesced notifications until ctx is done.
func forward(ctx context.Context, sigCh <-chan os.Signal, stop func()) <-chan struct{} {
	events := make(chan struct{}, 1)
	go func() {
		defer close(events)
		defer stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-sigCh:
				select {
				case events <- struct{}{}:
				default:
					// A render is already pending; it will see the latest size.
				}
			}
		}
	}()
	return events
}
