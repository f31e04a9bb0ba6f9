// tsbngen validates dynamic Bayesian network model files and generates
// synthetic time series from them.
//
// Usage:
//
//	tsbngen validate <model.yaml|model.json>
//	tsbngen generate <model> [--series=N] [--length=T] [--seed=S] [--workers=W] [--switch-time=K] [-o out.json]
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
