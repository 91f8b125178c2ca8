package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shared-ledger/internal/app"
	"shared-ledger/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	log := logger.NewFromEnv()
	os.Exit(run(log))
}

func run(log logger.Logger) int {
	log.Info("ledger: starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(log)
	if err != nil {
		log.Critical("ledger: init failed", "err", err)
		return 1
	}
	defer func() {
		if err := application.Close(); err != nil {
			log.Error("ledger: close failed", "err", err)
		}
	}()

	srv := application.HTTPServer()
	serverErr := make(chan error, 1)
	go func() {
		log.Info("http: listening", "addr", srv.Addr)
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("ledger: shutdown signal received")
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Critical("http: server failed", "addr", srv.Addr, "err", err)
			return 1
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("http: graceful shutdown failed", "err", err)
		return 1
	}

	log.Info("ledger: stopped")
	return 0
}
