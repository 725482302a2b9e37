package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mentha/salon-booking/internal/config"
	dbpkg "github.com/mentha/salon-booking/internal/db"
	"github.com/mentha/salon-booking/internal/logging"
	"github.com/mentha/salon-booking/internal/migration"
	"github.com/mentha/salon-booking/internal/storage"
)

func main() {
	cfg := config.Load()
	logging.Init(cfg.LogLevel, cfg.LogPretty)

	if _, err := os.Stat(cfg.LocalDBPath); err != nil {
		log.Error().Err(err).Str("path", cfg.LocalDBPath).Msg("local database not found")
		os.Exit(1)
	}

	db, err := dbpkg.Open(dbpkg.DriverSQLite, cfg.LocalDBPath)
	if err != nil {
		log.Error().Err(err).Msg("failed to open local database")
		os.Exit(1)
	}

	ctx := context.Background()

	results, err := migration.ExportSQLite(ctx, db, cfg.ExportDir)
	if err != nil {
		log.Error().Err(err).Msg("export failed")
		os.Exit(1)
	}
	log.Info().Int("tables", len(results)).Str("dir", cfg.ExportDir).Msg("export finished")

	if cfg.ExportS3Bucket == "" {
		return
	}

	store, err := storage.NewS3(ctx, storage.S3Options{
		Bucket:          cfg.ExportS3Bucket,
		Region:          cfg.S3Region,
		Endpoint:        cfg.S3Endpoint,
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to configure export bucket")
		os.Exit(1)
	}

	prefix := "exports/" + time.Now().UTC().Format("20060102-150405")
	n, err := migration.UploadExports(ctx, store, cfg.ExportDir, prefix)
	if err != nil {
		log.Error().Err(err).Msg("upload failed")
		os.Exit(1)
	}
	log.Info().Int("files", n).Str("bucket", cfg.ExportS3Bucket).Str("prefix", prefix).Msg("export uploaded")
}
