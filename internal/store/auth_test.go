package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthenticateSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, password_hash
		FROM admins
		WHERE username = $1
	`)).
		WithArgs("admin").
		WillReturnRows(sqlmock.NewRows([]string{"id", "password_hash"}).AddRow(int64(1), hash))

	mock.ExpectExec(regexp.QuoteMeta(`
		INSERT INTO admin_sessions (token, admin_id)
		VALUES ($1, $2)
	`)).
		WithArgs(sqlmock.AnyArg(), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	token, err := s.Authenticate(context.Background(), "admin", "hunter2")
	if err != nil {
		t.Fatalf("Authenticate error: %v", err)
	}
	if token == "" {
		t.Fatal("expected a session token")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAuthenticateWrongPassword(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, password_hash
		FROM admins
		WHERE username = $1
	`)).
		WithArgs("admin").
		WillReturnRows(sqlmock.NewRows([]string{"id", "password_hash"}).AddRow(int64(1), hash))

	_, err = s.Authenticate(context.Background(), "admin", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticateUnknownUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, password_hash
		FROM admins
		WHERE username = $1
	`)).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id", "password_hash"}))

	_, err = s.Authenticate(context.Background(), "ghost", "whatever")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestValidateSessionInvalidToken(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT admin_id
		FROM admin_sessions
		WHERE token = $1
	`)).
		WithArgs("bogus").
		WillReturnRows(sqlmock.NewRows([]string{"admin_id"}))

	if err := s.ValidateSession(context.Background(), "bogus"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestValidateSessionSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT admin_id
		FROM admin_sessions
		WHERE token = $1
	`)).
		WithArgs("valid").
		WillReturnRows(sqlmock.NewRows([]string{"admin_id"}).AddRow(int64(1)))

	if err := s.ValidateSession(context.Background(), "valid"); err != nil {
		t.Fatalf("ValidateSession error: %v", err)
	}
}
