// Command arcsignd runs the stateless wallet-derivation HTTP service.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/arcsign/derive/internal/chainregistry"
	"github.com/arcsign/derive/internal/chains"
	"github.com/arcsign/derive/internal/config"
	"github.com/arcsign/derive/internal/httpapi"
	"github.com/arcsign/derive/internal/logging"
)

func main() {
	log, err := logging.New(false)
	if err != nil {
		panic(err)
	}
	defer log.Sync() //nolint:errcheck

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load failed", zap.Error(err))
	}
	if cfg.APIKey == "" {
		log.Warn("API_KEY is unset; every authenticated request will be rejected")
	}

	reg := chainregistry.New()
	chains.Init(reg)

	srv := httpapi.New(log, cfg.APIKey, reg)
	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           srv,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("listening", zap.String("addr", cfg.Addr()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
