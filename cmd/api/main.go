package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/mentha/salon-booking/internal/audit"
	"github.com/mentha/salon-booking/internal/auth"
	"github.com/mentha/salon-booking/internal/cache"
	"github.com/mentha/salon-booking/internal/config"
	dbpkg "github.com/mentha/salon-booking/internal/db"
	"github.com/mentha/salon-booking/internal/logging"
	"github.com/mentha/salon-booking/internal/middleware"
	"github.com/mentha/salon-booking/internal/routes"
	"github.com/mentha/salon-booking/internal/storage"
	"github.com/mentha/salon-booking/internal/validators"
)

func main() {

	cfg := config.Load()
	logging.Init(cfg.LogLevel, cfg.LogPretty)
	gin.SetMode(cfg.GinMode)
	validators.Init()

	db := dbpkg.NewDB(cfg)

	rdb := cache.NewRedis(cfg)
	if rdb != nil {
		defer rdb.Close()
	}

	store, err := storage.New(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to configure object storage")
	}

	dispatcher := audit.NewDispatcher(audit.New(db))
	defer dispatcher.Close()

	r := routes.NewRouter(routes.Deps{
		DB:      db,
		Config:  cfg,
		Tokens:  auth.NewTokenManager(cfg.Secret()),
		Audit:   dispatcher,
		Catalog: cache.NewCatalog(rdb, cfg.CatalogCacheTTL),
		Limiter: middleware.NewRateLimiter(rdb, cfg.RateLimitMax, cfg.RateLimitWindow),
		Store:   store,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Str("db", cfg.DBDriver).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}
