package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/abhisek/pathdash/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
