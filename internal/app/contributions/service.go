package contributions

import (
	"context"

	"inkbeat/internal/store"
)

// Store captures the persistence needs for contribution workflows.
type Store interface {
	CreateContribution(ctx context.Context, in store.ContributionInput) (store.Contribution, error)
	ListContributions(ctx context.Context, status string) ([]store.Contribution, error)
	ContributionByID(ctx context.Context, id string) (store.Contribution, error)
	UpdateContributionStatus(ctx context.Context, id, status string) (store.Contribution, error)
	DeleteContribution(ctx context.Context, id string) error
	ContributionStats(ctx context.Context) (store.ContributionStats, error)
}

// Service coordinates contribution operations.
type Service interface {
	Create(ctx context.Context, in store.ContributionInput) (store.Contribution, error)
	List(ctx context.Context, status string) ([]store.Contribution, error)
	Get(ctx context.Context, id string) (store.Contribution, error)
	UpdateStatus(ctx context.Context, id, status string) (store.Contribution, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (store.ContributionStats, error)
}

type service struct {
	store Store
}

// New constructs a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Create(ctx context.Context, in store.ContributionInput) (store.Contribution, error) {
	return s.store.CreateContribution(ctx, in)
}

func (s *service) List(ctx context.Context, status string) ([]store.Contribution, error) {
	return s.store.ListContributions(ctx, status)
}

func (s *service) Get(ctx context.Context, id string) (store.Contribution, error) {
	return s.store.ContributionByID(ctx, id)
}

func (s *service) UpdateStatus(ctx context.Context, id, status string) (store.Contribution, error) {
	return s.store.UpdateContributionStatus(ctx, id, status)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.store.DeleteContribution(ctx, id)
}

func (s *service) Stats(ctx context.Context) (store.ContributionStats, error) {
	return s.store.ContributionStats(ctx)
}
