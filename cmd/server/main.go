package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/osmnav/wayplanner/pkg/di"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server, cleanup, err := di.InitializePlannerServer()
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	if err := server.Run(ctx); err != nil {
		zap.L().Fatal("server exited", zap.Error(err))
	}
}
