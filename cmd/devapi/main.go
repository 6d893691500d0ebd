package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Kaleth2216/FadeApp/internal/audit"
	"github.com/Kaleth2216/FadeApp/internal/config"
	"github.com/Kaleth2216/FadeApp/internal/devapi"
	"github.com/Kaleth2216/FadeApp/internal/logger"
)

func main() {

	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	dispatcher := audit.NewDispatcher(audit.New(log), log)
	defer dispatcher.Close()

	store := devapi.NewStore()
	ids, err := devapi.Seed(store)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed dev API")
	}
	log.Info().
		Int64("barbershop_id", ids.ShopID).
		Int64("barber_id", ids.BarberID).
		Int64("client_id", ids.ClientID).
		Str("password", devapi.SeedPassword).
		Msg("demo accounts ready")

	srv := devapi.New(store, devapi.Options{
		JWTSecret: cfg.JWTSecret,
		RateLimit: 20,
		Burst:     40,
		Audit:     dispatcher,
	})

	httpSrv := &http.Server{
		Addr:              cfg.DevAPIAddr(),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", httpSrv.Addr).Msg("server running")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
