package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	server "hotel_detail/internal/adapters/http_server"
	"hotel_detail/internal/adapters/observability"
	redisad "hotel_detail/internal/adapters/redis"
	"hotel_detail/internal/app"
	"hotel_detail/internal/domain"
	"hotel_detail/internal/mockcheck"
	"hotel_detail/internal/shared"
	"hotel_detail/internal/storage/memory"
	mysqlrepo "hotel_detail/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// store
	var store domain.Store
	if cfg.MySQLDSN == "" {
		store = memory.New()
	} else {
		db, err := mysqlrepo.Open(ctx, cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("database open failed")
		}
		if cfg.AutoMigrate {
			if err := mysqlrepo.Migrate(ctx, db); err != nil {
				log.Fatal().Err(err).Msg("auto-migrate failed")
			}
			log.Info().Msg("schema migrated")
		}
		log.Info().Msg("database connection ok")
		store = mysqlrepo.New(db)
	}

	patterns, err := mockcheck.LoadPatterns(cfg.MockPatternsFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.MockPatternsFile).Msg("load mock patterns failed")
	}

	// deps
	pages := app.NewPageService(mockcheck.New(patterns), store)
	h := &server.Handlers{Catalog: app.NewCatalogService(store), Pages: pages}
	if cfg.RedisAddr != "" {
		ps := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer ps.Close()
		if err := ps.Ping(ctx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis ping failed; publishing may fail")
		}
		h.Publisher = app.NewPublishService(pages, ps, cfg.PageTTL)
	} else {
		log.Warn().Msg("REDIS_ADDR is empty; publishing disabled")
	}

	// http
	srv := server.New(cfg.CORSOrigins, cfg.RequestTimeout)
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(h)

	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("http shutdown failed")
		}
	}()

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("http server failed")
	}
	log.Info().Msg("API stopped")
}
