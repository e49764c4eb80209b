package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"inkbeat/internal/content"
)

// ContactMessage is a visitor message submitted through the contact form.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContactMessageInput carries the caller-supplied contact form fields.
type ContactMessageInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Validate checks the required contact form fields.
func (in ContactMessageInput) Validate() error {
	for _, f := range []struct{ value, name string }{
		{in.Name, "name"},
		{in.Email, "email"},
		{in.Message, "message"},
	} {
		if f.value == "" {
			return &content.ValidationError{Field: f.name}
		}
	}
	return nil
}

const contactMessageColumns = "id, name, email, subject, message, status, created_at, updated_at"

// CreateContactMessage stores a new message with status "unread".
func (s *Store) CreateContactMessage(ctx context.Context, in ContactMessageInput) (ContactMessage, error) {
	if err := in.Validate(); err != nil {
		return ContactMessage{}, err
	}

	row := s.db.QueryRowContext(ctx, `
		INSERT INTO contact_messages (id, name, email, subject, message, status, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, 'unread', NOW(), NOW())
		RETURNING `+contactMessageColumns+`
	`, in.Name, in.Email, in.Subject, in.Message)

	msg, err := scanContactMessage(row)
	if err != nil {
		return ContactMessage{}, fmt.Errorf("insert contact message: %w", err)
	}
	return msg, nil
}

// ListContactMessages returns messages newest first, optionally filtered by
// status ("all" or empty means no filter).
func (s *Store) ListContactMessages(ctx context.Context, status string) ([]ContactMessage, error) {
	query := "SELECT " + contactMessageColumns + " FROM contact_messages"
	var args []any
	if status != "" && status != "all" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select contact messages: %w", err)
	}
	defer rows.Close()

	messages := []ContactMessage{}
	for rows.Next() {
		msg, err := scanContactMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contact messages: %w", err)
	}
	return messages, nil
}

// ContactMessageByID fetches a single message.
func (s *Store) ContactMessageByID(ctx context.Context, id string) (ContactMessage, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+contactMessageColumns+` FROM contact_messages WHERE id = $1`, id)
	msg, err := scanContactMessage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return ContactMessage{}, ErrNotFound
	}
	if err != nil {
		return ContactMessage{}, fmt.Errorf("get contact message: %w", err)
	}
	return msg, nil
}

// UpdateContactMessageStatus marks a message read/unread/archived.
func (s *Store) UpdateContactMessageStatus(ctx context.Context, id, status string) (ContactMessage, error) {
	if status == "" {
		return ContactMessage{}, &content.ValidationError{Field: "status"}
	}
	row := s.db.QueryRowContext(ctx, `
		UPDATE contact_messages SET status = $1, updated_at = NOW() WHERE id = $2
		RETURNING `+contactMessageColumns+`
	`, status, id)
	msg, err := scanContactMessage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return ContactMessage{}, ErrNotFound
	}
	if err != nil {
		return ContactMessage{}, fmt.Errorf("update contact message: %w", err)
	}
	return msg, nil
}

// DeleteContactMessage removes a message permanently.
func (s *Store) DeleteContactMessage(ctx context.Context, id string) error {
	return execExpectingRow(ctx, s.db, "DELETE FROM contact_messages WHERE id = $1", id)
}

func scanContactMessage(r rowScanner) (ContactMessage, error) {
	var m ContactMessage
	err := r.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.Status, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}
