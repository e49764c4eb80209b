package main

import (
	"database/sql"
	"net/http"

	"inkbeat/internal/app/admins"
	"inkbeat/internal/app/contributions"
	"inkbeat/internal/app/messages"
	"inkbeat/internal/app/music"
	"inkbeat/internal/app/news"
	"inkbeat/internal/app/showcase"
	"inkbeat/internal/app/tattoos"
	"inkbeat/internal/http/middleware"
	"inkbeat/internal/httpapi"
	"inkbeat/internal/store"
)

func newHTTPHandler(cfg Config, db *sql.DB, dataStore *store.Store) http.Handler {
	musicRepo := store.NewMusicRepository(db)
	tattooRepo := store.NewTattooRepository(db)
	newsRepo := store.NewNewsRepository(db)

	// Per-kind services
	musicSvc := music.New(musicRepo)
	tattooSvc := tattoos.New(tattooRepo)
	newsSvc := news.New(newsRepo)

	// Cross-kind aggregator
	showcaseSvc := showcase.New(musicRepo, tattooRepo, newsRepo)

	// Admin-facing services
	messageSvc := messages.New(dataStore)
	contributionSvc := contributions.New(dataStore)
	adminSvc := admins.New(dataStore)

	api := httpapi.New(musicSvc, tattooSvc, newsSvc, showcaseSvc, messageSvc, contributionSvc, adminSvc)

	handler := api.Routes()
	handler = middleware.CORS(cfg.AllowedOrigins)(handler)
	handler = middleware.RequestLogging()(handler)
	handler = middleware.Recovery()(handler)
	return handler
}
