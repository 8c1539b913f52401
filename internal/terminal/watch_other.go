//go:build !unix

package terminal

import (
	"context"
	"os"
)

// Watch returns a channel that never fires: resize signals are only
// available on unix. It is closed once ctx is done.
func Watch(ctx context.Context) <-chan struct{} {
	return forward(ctx, make(chan os.Signal), func() {})
}
