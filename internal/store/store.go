package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrAdminExists signals the admin username is already taken.
	ErrAdminExists = errors.New("admin already exists")
	// ErrInvalidCredentials indicates a login failure.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUnauthorized indicates an invalid or missing session.
	ErrUnauthorized = errors.New("unauthorized")
)

// Store provides persistence for the admin, contact-message and contribution
// surfaces, backed by Postgres. The content collections have their own
// repositories (MusicRepository, TattooRepository, NewsRepository).
type Store struct {
	db *sql.DB
}

// New sets up a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// execExpectingRow runs a statement that must touch exactly one row and maps
// a zero row count to ErrNotFound.
func execExpectingRow(ctx context.Context, db *sql.DB, query string, args ...any) error {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("exec: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
