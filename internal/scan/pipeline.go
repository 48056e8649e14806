package scan

import (
	"context"
	"fmt"
	"strings"

	"atscan-backend/internal/extract"
	"atscan-backend/internal/llm"
	"atscan-backend/internal/reports"
)

// Input carries one scan request through the pipeline.
type Input struct {
	ResumeBytes       []byte
	MimeType          string
	FileName          string
	JobDescription    string
	YearsOfExperience float64
}

// Pipeline runs a resume through extraction, the generator, and
// normalization. It never persists anything: storage is the caller's
// responsibility, which is why the extracted resume text is echoed back
// in the result.
type Pipeline struct {
	LLM llm.Client
}

// NewPipeline constructs a Pipeline.
func NewPipeline(client llm.Client) *Pipeline {
	return &Pipeline{LLM: client}
}

// Scan produces a fully-populated report field set or fails with either
// ErrInvalidInput or a fatal scan error. There are no partial results.
func (p *Pipeline) Scan(ctx context.Context, input Input) (reports.Fields, error) {
	if len(input.ResumeBytes) == 0 {
		return reports.Fields{}, fmt.Errorf("%w: resume file is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.JobDescription) == "" {
		return reports.Fields{}, fmt.Errorf("%w: job description is required", ErrInvalidInput)
	}

	text, err := extract.FromBytes(ctx, input.ResumeBytes, input.MimeType, input.FileName)
	if err != nil {
		return reports.Fields{}, fmt.Errorf("extract resume text: %w", err)
	}

	raw, err := p.LLM.GenerateReport(ctx, llm.ScanInput{
		ResumeText:        text,
		JobDescription:    input.JobDescription,
		YearsOfExperience: input.YearsOfExperience,
	})
	if err != nil {
		return reports.Fields{}, fmt.Errorf("generate report: %w", err)
	}

	parsed, err := repairJSON(raw)
	if err != nil {
		return reports.Fields{}, fmt.Errorf("parse model reply: %w", err)
	}

	fields := normalize(parsed)
	fields.ResumeText = text
	return fields, nil
}
