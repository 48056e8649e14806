package llm

import (
	"context"
	"errors"
)

// Client abstracts generative-AI providers for resume scanning.
type Client interface {
	// GenerateReport sends the scan prompt and returns the model's raw text
	// reply. The reply should contain one JSON object but is not guaranteed
	// to: callers must treat it as untrusted free text.
	GenerateReport(ctx context.Context, input ScanInput) (string, error)
}

// ScanInput captures the inputs needed for one resume scan.
type ScanInput struct {
	ResumeText        string
	JobDescription    string
	YearsOfExperience float64
}

// ErrNotConfigured is returned when no provider has been wired.
var ErrNotConfigured = errors.New("llm client not configured")

// PlaceholderClient is a stub implementation used when no API key is set.
type PlaceholderClient struct{}

// GenerateReport returns ErrNotConfigured.
func (PlaceholderClient) GenerateReport(ctx context.Context, input ScanInput) (string, error) {
	_ = ctx
	_ = input
	return "", ErrNotConfigured
}
