package reports

import "context"

// Repo defines persistence operations for reports. Reports are append-only:
// there is no update or delete.
type Repo interface {
	Create(ctx context.Context, report Report) error
	GetByID(ctx context.Context, userID, reportID string) (Report, error)
	ListByUser(ctx context.Context, userID string) ([]Report, error)
	CountByUser(ctx context.Context, userID string) (int, error)
}
