package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/you-humble/mongo-probe/internal/app"
	"github.com/you-humble/mongo-probe/platform/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, quit := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT, syscall.SIGTERM,
	)
	defer quit()
	defer func() { _ = logger.Sync() }()

	a, err := app.New(ctx)
	if err != nil {
		logger.Error(ctx,
			"❌ Failed to create an application",
			logger.ErrorF(err),
		)
		return 1
	}

	if err := a.Run(ctx); err != nil {
		logger.Error(ctx, "❌ Mongo probe server error", logger.ErrorF(err))
		return 1
	}

	return 0
}
