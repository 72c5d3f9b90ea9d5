package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"hotel_detail/internal/adapters/observability"
	redisad "hotel_detail/internal/adapters/redis"
	"hotel_detail/internal/app"
	"hotel_detail/internal/mockcheck"
	"hotel_detail/internal/shared"
	mysqlrepo "hotel_detail/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	log.Info().
		Int("workers", cfg.PublishWorkers).
		Str("schedule", cfg.PublishSchedule).
		Dur("ttl", cfg.PageTTL).
		Msg("publisher starting")

	if cfg.MySQLDSN == "" || cfg.RedisAddr == "" {
		log.Fatal().Msg("publisher needs MYSQL_DSN and REDIS_ADDR")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := mysqlrepo.Open(ctx, cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database open failed")
	}
	log.Info().Msg("db ping ok")
	repo := mysqlrepo.New(db)

	patterns, err := mockcheck.LoadPatterns(cfg.MockPatternsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("load mock patterns failed")
	}

	pages := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer pages.Close()
	pub := app.NewPublishService(app.NewPageService(mockcheck.New(patterns), repo), pages, cfg.PageTTL)

	run := func() {
		start := time.Now()
		sum, err := pub.PublishAll(ctx, repo, cfg.PublishWorkers)
		if err != nil {
			log.Error().Err(err).Msg("publish run failed")
			return
		}
		log.Info().
			Int("published", sum.Published).
			Int("blocked", sum.Blocked).
			Int("missing", sum.Missing).
			Int("failed", sum.Failed).
			Dur("duration", time.Since(start)).
			Msg("publish run completed")
	}

	if cfg.PublishSchedule == "" {
		run()
		return
	}

	observability.Serve(cfg.MetricsAddr, observability.InitRegistry())

	c := cron.New()
	if _, err := c.AddFunc(cfg.PublishSchedule, run); err != nil {
		log.Fatal().Err(err).Str("schedule", cfg.PublishSchedule).Msg("invalid PUBLISH_SCHEDULE")
	}
	c.Start()
	log.Info().Msg("publisher scheduled")

	<-ctx.Done()
	<-c.Stop().Done()
	log.Info().Msg("publisher stopped")
}
