package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/mentha/salon-booking/internal/config"
	dbpkg "github.com/mentha/salon-booking/internal/db"
	"github.com/mentha/salon-booking/internal/logging"
	"github.com/mentha/salon-booking/internal/migration"
)

func main() {
	cfg := config.Load()
	logging.Init(cfg.LogLevel, cfg.LogPretty)

	if _, err := os.Stat(cfg.LocalDBPath); err != nil {
		log.Error().Err(err).Str("path", cfg.LocalDBPath).Msg("local database not found")
		os.Exit(1)
	}
	if cfg.HostedDBUrl == "" {
		log.Error().Msg("HOSTED_DATABASE_URL is not set")
		os.Exit(1)
	}

	src, err := dbpkg.Open(dbpkg.DriverSQLite, cfg.LocalDBPath)
	if err != nil {
		log.Error().Err(err).Msg("failed to open local database")
		os.Exit(1)
	}

	dst, err := dbpkg.Open(dbpkg.DriverPostgres, cfg.HostedDBUrl)
	if err != nil {
		log.Error().Err(err).Msg("failed to open hosted database")
		os.Exit(1)
	}
	if err := dbpkg.Migrate(dst); err != nil {
		log.Error().Err(err).Msg("failed to prepare hosted schema")
		os.Exit(1)
	}
	if sqlDB, err := dst.DB(); err == nil {
		_ = sqlDB.Close()
	}

	ctx := context.Background()

	sink, err := migration.NewPgxSink(ctx, cfg.HostedDBUrl)
	if err != nil {
		log.Error().Err(err).Msg("failed to connect hosted database")
		os.Exit(1)
	}
	defer sink.Close()

	report(ctx, sink, "before")

	results, err := migration.NewCopier(src, sink, cfg.MigrateBatchSize).Run(ctx)
	if err != nil {
		sink.Close()
		log.Error().Err(err).Msg("migration failed, re-run to resume")
		os.Exit(1)
	}

	total := 0
	for _, r := range results {
		total += r.Rows
	}
	log.Info().Int("rows", total).Msg("migration finished")

	report(ctx, sink, "after")
}

func report(ctx context.Context, sink *migration.PgxSink, stage string) {
	for _, table := range migration.PortableTables {
		n, err := sink.Count(ctx, table)
		if err != nil {
			log.Warn().Err(err).Str("table", table).Msg("count failed")
			continue
		}
		log.Info().Str("stage", stage).Str("table", table).Int64("rows", n).Msg("hosted table size")
	}
}
