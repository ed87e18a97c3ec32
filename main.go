package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/dtnitsch/wordharvest/internal/harvest"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := harvest.NewApp().RunContext(ctx, os.Args)
	stop()

	os.Exit(harvest.HandleError(os.Stdout, os.Stderr, err))
}
