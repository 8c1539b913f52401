//go:build unix

package terminal

import (
	"context"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// Watch delivers a notification every time the terminal is resized
// (SIGWINCH). The channel holds one pending notification, so a burst of
// resizes collapses into at least one. It is closed once ctx is done.
func Watch(ctx context.Context) <-chan struct{} {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, unix.SIGWINCH)
	return forward(ctx, sigCh, func() { signal.Stop(sigCh) })
}
