package scan

import "errors"

var (
	// ErrInvalidInput marks client errors: missing file, missing job
	// description, unparseable experience value. No upstream call is made.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoJSON is returned when the model reply contains no parseable
	// JSON object.
	ErrNoJSON = errors.New("no JSON object in model reply")
)
