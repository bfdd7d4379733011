// Package process handles OS signal plumbing for the long-running modes.
package process

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// ShutdownSignals are the signals that trigger a graceful shutdown: the
// final render goes out and the port is released before exit.
var ShutdownSignals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}

// ShutdownContext returns a context cancelled on the first shutdown
// signal. A second signal kills the process immediately, for when the
// graceful path itself is wedged.
func ShutdownContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(parent, ShutdownSignals...)

	go func() {
		<-ctx.Done()
		stop() // restore default handling so a second signal is fatal
	}()

	return ctx, stop
}
