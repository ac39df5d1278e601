package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charadas/charadas-api/pkg/logger"
)

func main() {
	logger.Init(os.Getenv("LOG_LEVEL"))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Errorf("%v", err)
		stop()
		os.Exit(1)
	}
}
