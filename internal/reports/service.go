package reports

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for reports.
type Service struct {
	Repo Repo
	// Limit caps how many reports a user may own. Zero disables the cap.
	Limit int
}

// NewService constructs a Service.
func NewService(repo Repo, limit int) *Service {
	return &Service{Repo: repo, Limit: limit}
}

// Create persists a report exactly once, assigning the id and creation time.
// Ids never come from callers or from the generator. The per-user cap is
// enforced here so direct calls to the create endpoint cannot exceed it.
func (s *Service) Create(ctx context.Context, report Report) (Report, error) {
	if report.UserID == "" {
		return Report{}, errors.New("userID is required")
	}
	if s.Limit > 0 {
		count, err := s.Repo.CountByUser(ctx, report.UserID)
		if err != nil {
			return Report{}, err
		}
		if count >= s.Limit {
			return Report{}, ErrLimitReached
		}
	}
	report.ID = uuid.NewString()
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
	}
	if err := s.Repo.Create(ctx, report); err != nil {
		return Report{}, err
	}
	return report, nil
}

// Get returns a report owned by the user.
func (s *Service) Get(ctx context.Context, userID, reportID string) (Report, error) {
	return s.Repo.GetByID(ctx, userID, reportID)
}

// List returns the user's reports, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]Report, error) {
	return s.Repo.ListByUser(ctx, userID)
}
