package store

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

// Compared against when the username does not exist, so login timing does not
// reveal which usernames are taken.
var dummyPasswordHash = []byte("$2a$10$CwTycUXWue0Thq9StjUM0uJ8n4VWeNseyX2fA9DE.D7su7J6iYGTC")

// CreateAdmin registers an admin account for the dashboard.
func (s *Store) CreateAdmin(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return fmt.Errorf("username and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO admins (username, password_hash)
		VALUES ($1, $2)
	`, username, hash); err != nil {
		if isUniqueViolation(err) {
			return ErrAdminExists
		}
		return fmt.Errorf("insert admin: %w", err)
	}

	return nil
}

// Authenticate validates admin credentials and returns a session token.
func (s *Store) Authenticate(ctx context.Context, username, password string) (string, error) {
	var (
		adminID int64
		hash    []byte
	)

	err := s.db.QueryRowContext(ctx, `
		SELECT id, password_hash
		FROM admins
		WHERE username = $1
	`, username).Scan(&adminID, &hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			_ = bcrypt.CompareHashAndPassword(dummyPasswordHash, []byte(password))
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("lookup admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := newToken()
	if err != nil {
		return "", fmt.Errorf("create token: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO admin_sessions (token, admin_id)
		VALUES ($1, $2)
	`, token, adminID); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	return token, nil
}

// ValidateSession checks an admin session token.
func (s *Store) ValidateSession(ctx context.Context, token string) error {
	var adminID int64
	err := s.db.QueryRowContext(ctx, `
		SELECT admin_id
		FROM admin_sessions
		WHERE token = $1
	`, token).Scan(&adminID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUnauthorized
		}
		return fmt.Errorf("lookup session: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

func newToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
