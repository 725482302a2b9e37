package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/mentha/salon-booking/internal/config"
	"github.com/mentha/salon-booking/internal/logging"
	"github.com/mentha/salon-booking/internal/migration"
)

func main() {
	cfg := config.Load()
	logging.Init(cfg.LogLevel, cfg.LogPretty)

	if err := migration.CleanTables(cfg.ExportDir); err != nil {
		log.Error().Err(err).Str("dir", cfg.ExportDir).Msg("clean failed")
		os.Exit(1)
	}
	log.Info().Msg("csv files cleaned")
}
