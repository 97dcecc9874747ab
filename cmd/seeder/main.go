package main

import (
	"context"
	"database/sql"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"hotel_dashboard/internal/adapters/generator"
	"hotel_dashboard/internal/adapters/observability"
	"hotel_dashboard/internal/app"
	"hotel_dashboard/internal/shared"
	mysqlrepo "hotel_dashboard/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	log.Info().
		Int("hotels", cfg.HotelCount).
		Int64("seed", cfg.Seed).
		Int("workers", cfg.Workers).
		Int("batch", cfg.BatchSize).
		Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)
	svc := app.NewSeedService(generator.New(cfg.HotelCount, cfg.Seed), repo)

	res, err := svc.Seed(ctx, cfg.BatchSize, cfg.Workers)
	if err != nil {
		log.Error().Err(err).Int("written", res.Written).Int("failed", res.Failed).Msg("seeding finished with errors")
	}

	n, err := repo.CountHotels(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("count hotels failed")
	}
	log.Info().
		Int("written", res.Written).
		Int("failed", res.Failed).
		Int("batches", res.Batches).
		Int("rows", n).
		Msg("seeding completed")
}
