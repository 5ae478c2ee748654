// SPDX-License-Identifier: MIT

// Command lvtransport solves transportation problems from the command line
// or serves the solvers over HTTP.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(ctx, version).Execute(); err != nil {
		stop()
		os.Exit(1)
	}
}
