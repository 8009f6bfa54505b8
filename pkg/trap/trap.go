// Package trap returns a root context for graceful exits.
//
// The context is canceled when one of Signals is received, which lets a
// running command stop writing output and return context.Canceled.
//
// 		func main() {
// 			ctx := trap.Context()
// 			if err := cmd.ExecuteContext(ctx); err != nil {
// 				os.Exit(1)
// 			}
// 		}
//
package trap

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/airplanedev/heading/pkg/logger"
)

var (
	// ForceExit causes trap to exit abruptly
	// on a second signal.
	ForceExit = true

	// Signals are the signals the package will
	// listen on.
	Signals = []os.Signal{
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	}

	// Used in tests.
	exit = os.Exit
)

// Context returns a context that is canceled on the first signal in
// Signals. A second signal exits with status 1 when ForceExit is set.
func Context() context.Context {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, Signals...)
	return newContext(signals)
}

func newContext(sigc <-chan os.Signal) context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		sig := <-sigc
		logger.Debug("trap: received %q", sig)
		cancel()

		sig = <-sigc
		if ForceExit {
			logger.Debug("trap: received %q, forcing exit", sig)
			exit(1)
		}
	}()

	return ctx
}
