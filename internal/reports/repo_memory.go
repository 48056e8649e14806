package reports

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores reports in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu     sync.RWMutex
	byID   map[string]Report
	byUser map[string][]string
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:   make(map[string]Report),
		byUser: make(map[string][]string),
	}
}

// Create stores the report.
func (r *MemoryRepo) Create(ctx context.Context, report Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[report.ID] = report
	r.byUser[report.UserID] = append(r.byUser[report.UserID], report.ID)
	return nil
}

// GetByID returns a report owned by the user.
func (r *MemoryRepo) GetByID(ctx context.Context, userID, reportID string) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	report, ok := r.byID[reportID]
	if !ok || report.UserID != userID {
		return Report{}, ErrNotFound
	}
	return report, nil
}

// CountByUser returns how many reports the user owns.
func (r *MemoryRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byUser[userID]), nil
}

// ListByUser returns the user's reports, newest first.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := r.byUser[userID]
	out := make([]Report, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.byID[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
