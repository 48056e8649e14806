package reports

import "errors"

var (
	ErrNotFound = errors.New("not found")

	// ErrLimitReached indicates the user already owns the maximum number
	// of reports.
	ErrLimitReached = errors.New("report limit reached")
)
