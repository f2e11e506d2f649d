package server

import (
	"context"
	"net/http"
	"time"

	"github.com/LambdaTest/coverage-bridge/config"
	"github.com/LambdaTest/coverage-bridge/pkg/api"
	"github.com/LambdaTest/coverage-bridge/pkg/lumber"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// ListenAndServe initializes a server to respond to HTTP network requests.
func ListenAndServe(ctx context.Context, router api.Router, config *config.Config, logger lumber.Logger) error {
	// set gin to release mode
	if config.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Infof("Setting up http handler")

	errChan := make(chan error, 1)

	// HTTP server instance
	srv := &http.Server{
		Addr:              ":" + config.Port,
		Handler:           router.Handler(),
		ReadHeaderTimeout: shutdownTimeout,
	}

	go func() {
		logger.Infof("Starting server on port %s", config.Port)
		// service connections
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Errorf("listen: %#v", err)
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Infof("Caller has requested graceful shutdown. shutting down the server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Errorf("Server Shutdown error: %v", err)
		}
		return nil
	case err := <-errChan:
		return err
	}
}
