package admins

import "context"

// Store captures the persistence needs for admin authentication.
type Store interface {
	Authenticate(ctx context.Context, username, password string) (string, error)
	ValidateSession(ctx context.Context, token string) error
}

// Service exposes admin login and session checks.
type Service interface {
	Login(ctx context.Context, username, password string) (string, error)
	Validate(ctx context.Context, token string) error
}

type service struct {
	store Store
}

// New wires a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Login(ctx context.Context, username, password string) (string, error) {
	return s.store.Authenticate(ctx, username, password)
}

func (s *service) Validate(ctx context.Context, token string) error {
	return s.store.ValidateSession(ctx, token)
}
