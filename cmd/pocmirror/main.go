package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"pocmirror/internal/cli/output"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := Execute(ctx)
	stop()
	if err != nil {
		output.Error("pocmirror: %v\n", err)
		os.Exit(1)
	}
}
