package main

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/fx"
)

const (
	exitOK = iota
	exitStartFailure
	exitStopFailure
	exitInvalidGraph
)

// run drives the application until ctx is cancelled or fx requests shutdown
// and returns the process exit code.
func run(ctx context.Context, app *fx.App, stderr io.Writer) int {
	if err := app.Err(); err != nil {
		fmt.Fprintf(stderr, "failed to build application: %v\n", err)
		return exitInvalidGraph
	}

	startCtx, cancelStart := context.WithTimeout(ctx, app.StartTimeout())
	defer cancelStart()
	if err := app.Start(startCtx); err != nil {
		fmt.Fprintf(stderr, "failed to start application: %v\n", err)
		return exitStartFailure
	}

	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	stopCtx, cancelStop := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil {
		fmt.Fprintf(stderr, "failed to stop application: %v\n", err)
		return exitStopFailure
	}
	return exitOK
}
