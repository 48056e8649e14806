package usage

import (
	"context"
	"sync"
	"time"
)

type memoryStore struct {
	mu    sync.RWMutex
	limit int
	data  map[string]Usage
}

func newMemoryStore(limit int) *memoryStore {
	return &memoryStore{
		limit: limit,
		data:  make(map[string]Usage),
	}
}

func (s *memoryStore) Get(ctx context.Context, userID string) (Usage, error) {
	if err := ctx.Err(); err != nil {
		return Usage{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.data[userID]
	if !ok {
		u = defaultUsage(s.limit)
		u.UpdatedAt = time.Now().UTC()
		s.data[userID] = u
	}
	return u, nil
}

func (s *memoryStore) Consume(ctx context.Context, userID string, n int) (Usage, error) {
	if err := ctx.Err(); err != nil {
		return Usage{}, err
	}
	if n <= 0 {
		return s.Get(ctx, userID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.data[userID]
	if !ok {
		u = defaultUsage(s.limit)
	}
	if u.Used+n > u.Limit {
		return Usage{}, ErrLimitReached
	}
	u.Used += n
	u.UpdatedAt = time.Now().UTC()
	s.data[userID] = u
	return u, nil
}

func (s *memoryStore) Refund(ctx context.Context, userID string, n int) (Usage, error) {
	if err := ctx.Err(); err != nil {
		return Usage{}, err
	}
	if n <= 0 {
		return s.Get(ctx, userID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.data[userID]
	if !ok {
		u = defaultUsage(s.limit)
	}
	u.Used -= n
	if u.Used < 0 {
		u.Used = 0
	}
	u.UpdatedAt = time.Now().UTC()
	s.data[userID] = u
	return u, nil
}

func (s *memoryStore) Reset(ctx context.Context, userID string) (Usage, error) {
	if err := ctx.Err(); err != nil {
		return Usage{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.data[userID]
	if !ok {
		u = defaultUsage(s.limit)
	}
	u.Used = 0
	u.UpdatedAt = time.Now().UTC()
	s.data[userID] = u
	return u, nil
}
