package main

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"hotel_dashboard/internal/adapters/generator"
	server "hotel_dashboard/internal/adapters/http_server"
	"hotel_dashboard/internal/adapters/observability"
	redisad "hotel_dashboard/internal/adapters/redis"
	"hotel_dashboard/internal/adapters/remote"
	"hotel_dashboard/internal/app"
	"hotel_dashboard/internal/domain"
	"hotel_dashboard/internal/shared"
	mysqlrepo "hotel_dashboard/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	observability.Serve()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	src := source(cfg)
	store, err := app.LoadStore(ctx, src)
	if err != nil {
		log.Fatal().Err(err).Str("source", cfg.DataSource).Msg("dashboard data unavailable")
	}

	var cache domain.Cache
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err := rc.Ping(ctx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable, snapshot cache disabled")
		} else {
			cache = rc
		}
	}
	q := app.NewQueryService(store, cache, cfg.CacheTTL, cfg.BinWidth)

	// http
	srv := server.New(log.Logger, server.DefaultTimeout)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q})

	log.Info().Str("addr", cfg.HTTPAddr).Int("hotels", store.Len()).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 5 * time.Second}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}

// source picks the record source named by DATA_SOURCE.
func source(cfg shared.Config) domain.HotelSource {
	switch cfg.DataSource {
	case shared.SourceMySQL:
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		if err := db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		log.Info().Msg("database connection ok")
		return mysqlrepo.New(db)
	case shared.SourceRemote:
		c, err := remote.New(cfg.RemoteBase, cfg.RemoteKey, cfg.RemoteRPS)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize remote client")
		}
		return c
	default:
		return generator.New(cfg.HotelCount, cfg.Seed)
	}
}
