package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/perezful/hanabi-backend/internal/httpapi"
	"github.com/perezful/hanabi-backend/internal/hub"
	"github.com/perezful/hanabi-backend/internal/ws"
)

const releaseVersion = "0.1.0"

const shutdownGrace = 5 * time.Second

func main() {
	_ = godotenv.Load()
	cfg := &Config{}
	cobra.CheckErr(newCmd(cfg).Execute())
}

func run(parent context.Context, cfg *Config) error {
	logger, err := newLogger(cfg.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	h := hub.NewHub(ctx, logger, hub.Options{RoomInboxSize: cfg.roomInboxSize})

	handler := httpapi.SetupRoutes(h, ws.Options{
		OriginPatterns: cfg.allowedOrigins,
		ClientBuffer:   cfg.clientBuffer,
		Logger:         logger,
	})

	srv := &http.Server{Addr: cfg.addr(), Handler: handler}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		h.Inbox() <- hub.ShutdownHub{}
		shutCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		return srv.Shutdown(shutCtx)
	})
	return g.Wait()
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
