package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"hotel-booking/cmd"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/wire"
	"hotel-booking/pkg/database"
	"hotel-booking/pkg/mailer"
	"hotel-booking/pkg/payment"
	"hotel-booking/pkg/utils"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug, config.App.Name)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	// account routes verify tokens issued by the auth service with the same secret
	if config.JWT.Secret == "" {
		logger.Fatal("JWT_SECRET is required")
	}

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("db_driver", config.Database.Driver),
		zap.Bool("debug", config.App.Debug),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bookings, closeStore, err := openBookingStore(ctx, config, logger)
	if err != nil {
		logger.Fatal("Failed to open booking store", zap.Error(err))
	}
	defer closeStore()

	repos, err := repository.NewRepository(bookings, logger)
	if err != nil {
		logger.Fatal("Failed to load hotel catalog", zap.Error(err))
	}

	gateway := payment.NewStripeGateway(config.Stripe, logger)
	mail := mailer.NewSMTPMailer(config.Email, logger)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// Wire all dependencies
	app := wire.Wiring(repos, gateway, mail, config, registry, logger)

	if err := cmd.APIServer(ctx, app.Router, config.App.Port, config.App, logger); err != nil {
		logger.Error("Server exited with error", zap.Error(err))
	}
}

// openBookingStore connects the booking store selected by DB_DRIVER.
func openBookingStore(ctx context.Context, config *utils.Config, logger *zap.Logger) (repository.BookingRepository, func(), error) {
	switch config.Database.Driver {
	case "postgres", "":
		db, err := database.InitDB(ctx, config.Database)
		if err != nil {
			return nil, nil, err
		}
		if err := database.Migrate(ctx, db, logger); err != nil {
			db.Close()
			return nil, nil, err
		}
		logger.Info("Database connected successfully", zap.String("driver", "postgres"))
		return repository.NewBookingRepository(db, logger), db.Close, nil

	case "mongo", "mongodb":
		db, err := database.InitMongo(ctx, config.Database)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Database connected successfully", zap.String("driver", "mongo"))
		closeFn := func() {
			if err := db.Client().Disconnect(context.Background()); err != nil {
				logger.Warn("Mongo disconnect failed", zap.Error(err))
			}
		}
		return repository.NewBookingMongoRepository(db, logger), closeFn, nil

	case "memory":
		logger.Warn("Using in-memory booking store; data is lost on restart")
		return repository.NewBookingMemoryRepository(logger), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown DB_DRIVER %q", config.Database.Driver)
	}
}
