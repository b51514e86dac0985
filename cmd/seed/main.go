// cmd/seed/main.go: crea el esquema y carga roles y personas de demo.
// Uso: go run ./cmd/seed   (lee la misma configuración que el servidor)
package main

import (
	"context"
	"os"
	"time"

	"personas/internal/config"
	"personas/internal/infra"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer infra.CloseDatabase(db)

	if err := infra.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := infra.Seed(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
	log.Info().Msg("✅ datos de demo cargados")
}
