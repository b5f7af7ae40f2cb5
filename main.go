package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/olezazza/black-lion-project/internal"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file, using process environment")
	}

	cfg := internal.LoadConfig()
	if cfg.DatabaseURL == "" {
		log.Fatal().Msg("DATABASE_URL is required")
	}
	if cfg.SessionSecret == "" {
		log.Fatal().Msg("SESSION_SECRET is required")
	}

	db := internal.MustDB(cfg.DatabaseURL)
	defer db.Close()

	if err := internal.Migrate(context.Background(), db); err != nil {
		log.Fatal().Err(err).Msg("schema migration failed")
	}

	r := internal.Routes(internal.NewPGStore(db), cfg)

	log.Info().Str("port", cfg.Port).Msg("listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
