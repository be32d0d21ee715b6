package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"hotel-booking/cmd"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/wire"
	"hotel-booking/pkg/database"
	"hotel-booking/pkg/utils"
)

const sessionCleanupInterval = time.Hour

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug, config.App.Name+"-auth")
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	if config.JWT.Secret == "" {
		logger.Fatal("JWT_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.InitDB(ctx, config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.Migrate(ctx, db, logger); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}

	repo := repository.NewAuthRepository(db, logger)
	go cleanSessions(ctx, repo.Session, logger)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	app := wire.AuthWiring(repo, config, registry, logger)

	logger.Info("Starting auth service", zap.String("port", config.App.AuthPort))

	if err := cmd.APIServer(ctx, app.Router, config.App.AuthPort, config.App, logger); err != nil {
		logger.Error("Auth server exited with error", zap.Error(err))
	}
}

// cleanSessions purges expired refresh sessions until ctx is done.
func cleanSessions(ctx context.Context, sessions repository.SessionRepository, logger *zap.Logger) {
	ticker := time.NewTicker(sessionCleanupInterval)
	defer ticker.Stop()

	for {
		if n, err := sessions.CleanExpiredSessions(ctx); err != nil {
			logger.Warn("Session cleanup failed", zap.Error(err))
		} else if n > 0 {
			logger.Info("Expired sessions removed", zap.Int64("count", n))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
