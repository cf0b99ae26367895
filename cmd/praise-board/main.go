package main

import (
	"log"

	"praise-board/internal/app"
	"praise-board/internal/config"
	"praise-board/internal/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}
	appLogger := logger.New(level, cfg.LogJSON)

	application := app.NewApplication(cfg, appLogger)
	application.Run()

	appLogger.Info("Main", "application terminated", nil)
}
