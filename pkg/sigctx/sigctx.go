// Package sigctx ties contexts to process termination.
package sigctx

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Signals stop the process gracefully.
var Signals = []os.Signal{syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT}

// NotifyContext is canceled on the first of [Signals].
func NotifyContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), Signals...)
}

// ShutdownContext bounds the cleanup that follows a canceled NotifyContext.
// It is detached from the signal context, which is already done by then.
func ShutdownContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}
