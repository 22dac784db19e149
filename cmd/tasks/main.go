package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"task-tracker/internal/cli"
)

func main() {
	// Interrupts cancel the running command; saves in flight are bounded by
	// the write timeout
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := cli.NewRootCommand()
	if err := root.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
