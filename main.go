package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"np-server/config"
	"np-server/di"
	"np-server/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	container := di.NewContainer(cfg, log)

	if err := container.NearbyPlacesHttpServer.Start(); err != nil {
		log.Fatal("Server stopped", zap.Error(err))
	}
}
