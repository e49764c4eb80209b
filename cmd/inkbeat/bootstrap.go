package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"inkbeat/internal/store"
)

// bootstrap creates the schema if it does not exist, ensures the configured
// admin account, and seeds sample content into an empty database.
func bootstrap(ctx context.Context, db *sql.DB, dataStore *store.Store, cfg Config) error {
	if err := ensureSchema(ctx, db); err != nil {
		return err
	}
	if err := ensureAdmin(ctx, dataStore, cfg); err != nil {
		return err
	}
	if err := seedContent(ctx, db); err != nil {
		return err
	}
	return nil
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS music (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		artist TEXT NOT NULL,
		genre TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		image_url TEXT NOT NULL,
		spotify_url TEXT NOT NULL DEFAULT '',
		youtube_url TEXT NOT NULL DEFAULT '',
		tags TEXT[] NOT NULL DEFAULT '{}',
		is_featured BOOLEAN NOT NULL DEFAULT FALSE,
		featured_section TEXT,
		status TEXT NOT NULL DEFAULT 'published',
		plays BIGINT NOT NULL DEFAULT 0,
		likes BIGINT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS tattoos (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		artist TEXT NOT NULL,
		style TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		image_url TEXT NOT NULL,
		tags TEXT[] NOT NULL DEFAULT '{}',
		is_featured BOOLEAN NOT NULL DEFAULT FALSE,
		featured_section TEXT,
		status TEXT NOT NULL DEFAULT 'published',
		views BIGINT NOT NULL DEFAULT 0,
		likes BIGINT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS news (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		author TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		excerpt TEXT NOT NULL DEFAULT '',
		content TEXT NOT NULL,
		image_url TEXT NOT NULL,
		tags TEXT[] NOT NULL DEFAULT '{}',
		is_featured BOOLEAN NOT NULL DEFAULT FALSE,
		featured_section TEXT,
		status TEXT NOT NULL DEFAULT 'published',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS contact_messages (
		id TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		subject TEXT NOT NULL DEFAULT '',
		message TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'unread',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS contributions (
		id TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		mobile TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT '',
		amount NUMERIC(12,2) NOT NULL,
		currency TEXT NOT NULL DEFAULT 'USD',
		status TEXT NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS admins (
		id BIGSERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password_hash BYTEA NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS admin_sessions (
		token TEXT PRIMARY KEY,
		admin_id BIGINT NOT NULL REFERENCES admins(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_music_tags ON music USING GIN (tags)`,
	`CREATE INDEX IF NOT EXISTS idx_tattoos_tags ON tattoos USING GIN (tags)`,
	`CREATE INDEX IF NOT EXISTS idx_news_tags ON news USING GIN (tags)`,
}

func ensureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func ensureAdmin(ctx context.Context, dataStore *store.Store, cfg Config) error {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		log.Warn().Msg("ADMIN_USERNAME/ADMIN_PASSWORD not set, skipping admin bootstrap")
		return nil
	}
	if err := dataStore.CreateAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil && !errors.Is(err, store.ErrAdminExists) {
		return fmt.Errorf("bootstrap admin: %w", err)
	}
	return nil
}

// seedContent fills an empty music table with a starter set across all three
// collections so a fresh install has something to render.
func seedContent(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM music`).Scan(&count); err != nil {
		return fmt.Errorf("count music: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	musicRows := []struct {
		title, artist, genre, image string
		tags                        []string
		featured                    bool
		section                     string
	}{
		{"Midnight Frequencies", "Iris Vale", "Electronic", "/images/music/midnight-frequencies.jpg", []string{"electronic", "ambient"}, true, "hero"},
		{"Copper Strings", "The Harbor Lights", "Indie Folk", "/images/music/copper-strings.jpg", []string{"folk", "acoustic"}, true, "hero"},
		{"Static Bloom", "Nova Reyes", "Alt Rock", "/images/music/static-bloom.jpg", []string{"rock"}, false, ""},
	}
	for _, row := range musicRows {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO music (id, title, artist, genre, image_url, tags, is_featured, featured_section)
			VALUES (gen_random_uuid()::text, $1, $2, $3, $4, $5, $6, NULLIF($7, ''))
		`, row.title, row.artist, row.genre, row.image, pq.Array(row.tags), row.featured, row.section); err != nil {
			return fmt.Errorf("seed music %q: %w", row.title, err)
		}
	}

	tattooRows := []struct {
		title, artist, style, image string
		tags                        []string
		featured                    bool
		section                     string
	}{
		{"Serpent and Peonies", "Mara Voss", "Neo-Traditional", "/images/tattoos/serpent-peonies.jpg", []string{"floral", "color"}, true, "gallery"},
		{"Blackwork Compass", "Dio Ferreira", "Blackwork", "/images/tattoos/blackwork-compass.jpg", []string{"blackwork", "geometric"}, false, ""},
	}
	for _, row := range tattooRows {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO tattoos (id, title, artist, style, image_url, tags, is_featured, featured_section)
			VALUES (gen_random_uuid()::text, $1, $2, $3, $4, $5, $6, NULLIF($7, ''))
		`, row.title, row.artist, row.style, row.image, pq.Array(row.tags), row.featured, row.section); err != nil {
			return fmt.Errorf("seed tattoo %q: %w", row.title, err)
		}
	}

	newsRows := []struct {
		title, author, category, body, image string
		tags                                 []string
		featured                             bool
		section                              string
	}{
		{"Studio Expansion Opens This Fall", "Editorial Team", "studio", "The new wing doubles our booking capacity and adds a dedicated flash room.", "/images/news/expansion.jpg", []string{"studio"}, true, "latest"},
		{"Guest Artist Series Announced", "Editorial Team", "events", "Four visiting artists join us over the winter season.", "/images/news/guest-series.jpg", []string{"events", "guests"}, false, ""},
	}
	for _, row := range newsRows {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO news (id, title, author, category, content, image_url, tags, is_featured, featured_section)
			VALUES (gen_random_uuid()::text, $1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''))
		`, row.title, row.author, row.category, row.body, row.image, pq.Array(row.tags), row.featured, row.section); err != nil {
			return fmt.Errorf("seed news %q: %w", row.title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	tx = nil

	log.Info().Msg("seeded starter content")
	return nil
}
