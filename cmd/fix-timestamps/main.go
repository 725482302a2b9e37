package main

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/mentha/salon-booking/internal/config"
	"github.com/mentha/salon-booking/internal/logging"
	"github.com/mentha/salon-booking/internal/migration"
)

func main() {
	cfg := config.Load()
	logging.Init(cfg.LogLevel, cfg.LogPretty)

	in := filepath.Join(cfg.ExportDir, "citas_clean.csv")
	out := filepath.Join(cfg.ExportDir, "citas_fixed.csv")

	stats, err := migration.FixTimestamps(in, out)
	if err != nil {
		log.Error().Err(err).Str("file", in).Msg("fix timestamps failed")
		os.Exit(1)
	}

	log.Info().
		Int("converted", stats.Converted).
		Int("kept", stats.Kept).
		Int("skipped", stats.Skipped).
		Str("file", out).
		Msg("timestamps fixed")
}
