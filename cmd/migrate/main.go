package main

import (
	"context"
	"log"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"quiz-coach/internal/config"
	"quiz-coach/internal/database"
	"quiz-coach/internal/logger"
)

func main() {
	direction := pflag.StringP("direction", "d", string(database.Up), "migration direction: up or down")
	pflag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	dir := database.Direction(*direction)
	if dir != database.Up && dir != database.Down {
		l.Fatal("Unknown migration direction", zap.String("direction", *direction))
	}

	if cfg.DB.Driver == database.DriverMemory {
		l.Info("Memory driver configured, nothing to migrate")
		return
	}

	db, err := database.Open(context.Background(), cfg.DB)
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	// the versioned runners close db themselves; a second Close is harmless
	defer db.Close()

	if err := database.RunMigrations(db.DB, cfg.DB.Driver, dir); err != nil {
		l.Fatal("Failed to run migrations", zap.Error(err), zap.String("driver", cfg.DB.Driver))
	}
	l.Info("Migrations applied", zap.String("driver", cfg.DB.Driver), zap.String("direction", string(dir)))
}
