package usage

import "context"

type store interface {
	Get(ctx context.Context, userID string) (Usage, error)
	Consume(ctx context.Context, userID string, n int) (Usage, error)
	Refund(ctx context.Context, userID string, n int) (Usage, error)
	Reset(ctx context.Context, userID string) (Usage, error)
}

// Service manages scan quota data via an underlying store.
type Service struct {
	store store
}

// NewService constructs a Service with an in-memory store.
func NewService(limit int) *Service {
	return &Service{store: newMemoryStore(limit)}
}

// NewPostgresService constructs a Service backed by Postgres.
func NewPostgresService(pgStore store) *Service {
	return &Service{store: pgStore}
}

// Get returns the current usage for a user, initializing defaults if absent.
func (s *Service) Get(ctx context.Context, userID string) (Usage, error) {
	return s.store.Get(ctx, userID)
}

// CanConsume reports whether the user can consume n scans.
func (s *Service) CanConsume(ctx context.Context, userID string, n int) (bool, Usage, error) {
	u, err := s.store.Get(ctx, userID)
	if err != nil {
		return false, Usage{}, err
	}
	if n <= 0 {
		return true, u, nil
	}
	if u.Used+n > u.Limit {
		return false, u, nil
	}
	return true, u, nil
}

// Consume increments usage by n if within limit. The check and the
// increment happen atomically in the store, so concurrent callers cannot
// both pass the gate on the last remaining scan.
func (s *Service) Consume(ctx context.Context, userID string, n int) (Usage, error) {
	return s.store.Consume(ctx, userID, n)
}

// Refund gives back n previously consumed scans, for callers that consume
// up-front and then fail.
func (s *Service) Refund(ctx context.Context, userID string, n int) (Usage, error) {
	return s.store.Refund(ctx, userID, n)
}

// Reset sets usage back to zero. Dev tooling only.
func (s *Service) Reset(ctx context.Context, userID string) (Usage, error) {
	return s.store.Reset(ctx, userID)
}
