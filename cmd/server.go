package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"hotel-booking/pkg/utils"
)

// APIServer serves handler on port until ctx is cancelled, then drains
// in-flight requests for up to ShutdownSeconds.
func APIServer(ctx context.Context, handler http.Handler, port string, config utils.AppConfig, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", port),
		Handler:      handler,
		ReadTimeout:  time.Duration(config.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(config.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:  time.Duration(config.IdleTimeoutSeconds) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server running", zap.String("addr", "http://localhost"+srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(config.ShutdownSeconds)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	logger.Info("Server stopped")
	return nil
}
