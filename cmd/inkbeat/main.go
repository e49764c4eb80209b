package main

import (
	"context"
	"net/http"
	"os"

	"github.com/rs/zerolog/log"

	"inkbeat/internal/logging"
	"inkbeat/internal/store"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		logging.Setup(logging.Config{})
		log.Fatal().Err(err).Msg("load config")
	}

	logging.Setup(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: os.Stdout})

	ctx := context.Background()

	db, err := openDatabase(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer db.Close()

	dataStore := store.New(db)

	if err := bootstrap(ctx, db, dataStore, cfg); err != nil {
		log.Fatal().Err(err).Msg("bootstrap")
	}

	handler := newHTTPHandler(cfg, db, dataStore)

	log.Info().Str("addr", cfg.Addr).Msg("starting API server")
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
