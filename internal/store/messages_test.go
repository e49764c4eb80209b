package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"inkbeat/internal/content"
)

func TestCreateContactMessageValidation(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	_, err = s.CreateContactMessage(context.Background(), ContactMessageInput{Name: "Ada"})
	var verr *content.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "email" {
		t.Fatalf("expected email field, got %q", verr.Field)
	}
}

func TestCreateContactMessageSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO contact_messages (id, name, email, subject, message, status, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, 'unread', NOW(), NOW())
		RETURNING ` + contactMessageColumns + `
	`)).
		WithArgs("Ada", "ada@example.com", "Booking", "Hello!").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "subject", "message", "status", "created_at", "updated_at"}).
			AddRow("cm1", "Ada", "ada@example.com", "Booking", "Hello!", "unread", testTime, testTime))

	msg, err := s.CreateContactMessage(context.Background(), ContactMessageInput{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Booking",
		Message: "Hello!",
	})
	if err != nil {
		t.Fatalf("CreateContactMessage error: %v", err)
	}
	if msg.Status != "unread" {
		t.Fatalf("expected unread status, got %q", msg.Status)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListContactMessagesStatusFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT "+contactMessageColumns+" FROM contact_messages WHERE status = $1 ORDER BY created_at DESC",
	)).
		WithArgs("unread").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "subject", "message", "status", "created_at", "updated_at"}).
			AddRow("cm1", "Ada", "ada@example.com", "", "Hello!", "unread", testTime, testTime))

	msgs, err := s.ListContactMessages(context.Background(), "unread")
	if err != nil {
		t.Fatalf("ListContactMessages error: %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
}

func TestListContactMessagesAllSkipsFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT " + contactMessageColumns + " FROM contact_messages ORDER BY created_at DESC",
	)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "subject", "message", "status", "created_at", "updated_at"}))

	msgs, err := s.ListContactMessages(context.Background(), "all")
	if err != nil {
		t.Fatalf("ListContactMessages error: %v", err)
	}
	if msgs == nil || len(msgs) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", msgs)
	}
}

func TestUpdateContactMessageStatusMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`
		UPDATE contact_messages SET status = $1, updated_at = NOW() WHERE id = $2
		RETURNING ` + contactMessageColumns + `
	`)).
		WithArgs("read", "missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "subject", "message", "status", "created_at", "updated_at"}))

	_, err = s.UpdateContactMessageStatus(context.Background(), "missing", "read")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteContactMessageMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM contact_messages WHERE id = $1")).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := s.DeleteContactMessage(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
