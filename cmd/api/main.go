package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"commodity-profits/internal/api"
	"commodity-profits/internal/config"
	"commodity-profits/internal/data"
	"commodity-profits/internal/logging"
)

func main() {
	// Config file is optional; PROFITS_* variables override it either way.
	if err := run(os.Getenv("PROFITS_CONFIG")); err != nil {
		fmt.Fprintf(os.Stderr, "error: %+v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.JSON)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	if cfg.Log.JSON {
		gin.SetMode(gin.ReleaseMode)
	}

	src := cfg.Source()
	grid, report, err := data.LoadGrid(context.Background(), src, cfg.Mode(), logger)
	if err != nil {
		return errors.Wrap(err, "load dataset")
	}

	router, err := api.NewRouter(api.Deps{
		Grid:           grid,
		Report:         report,
		Sources:        data.Discover(src),
		Mode:           cfg.Mode(),
		AllowedOrigins: cfg.API.AllowedOrigins,
		Logger:         logger,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.API.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting API server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "serve")
	case sig := <-sigChan:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
