package messages

import (
	"context"

	"inkbeat/internal/store"
)

// Store captures the persistence needs for contact-message workflows.
type Store interface {
	CreateContactMessage(ctx context.Context, in store.ContactMessageInput) (store.ContactMessage, error)
	ListContactMessages(ctx context.Context, status string) ([]store.ContactMessage, error)
	ContactMessageByID(ctx context.Context, id string) (store.ContactMessage, error)
	UpdateContactMessageStatus(ctx context.Context, id, status string) (store.ContactMessage, error)
	DeleteContactMessage(ctx context.Context, id string) error
}

// Service coordinates contact-message operations.
type Service interface {
	Create(ctx context.Context, in store.ContactMessageInput) (store.ContactMessage, error)
	List(ctx context.Context, status string) ([]store.ContactMessage, error)
	Get(ctx context.Context, id string) (store.ContactMessage, error)
	UpdateStatus(ctx context.Context, id, status string) (store.ContactMessage, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	store Store
}

// New constructs a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Create(ctx context.Context, in store.ContactMessageInput) (store.ContactMessage, error) {
	return s.store.CreateContactMessage(ctx, in)
}

func (s *service) List(ctx context.Context, status string) ([]store.ContactMessage, error) {
	return s.store.ListContactMessages(ctx, status)
}

func (s *service) Get(ctx context.Context, id string) (store.ContactMessage, error) {
	return s.store.ContactMessageByID(ctx, id)
}

func (s *service) UpdateStatus(ctx context.Context, id, status string) (store.ContactMessage, error) {
	return s.store.UpdateContactMessageStatus(ctx, id, status)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.store.DeleteContactMessage(ctx, id)
}
