package reports

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. Scan output lives in a single JSONB
// column; the request-echo fields get their own columns for querying.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new report.
func (r *PGRepo) Create(ctx context.Context, report Report) error {
	const query = `
INSERT INTO reports (id, user_id, job_title, company_name, job_description, fields, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	payload, err := json.Marshal(report.Fields)
	if err != nil {
		return fmt.Errorf("marshal report fields: %w", err)
	}
	_, err = r.DB.ExecContext(ctx, query,
		report.ID,
		report.UserID,
		report.JobTitle,
		report.CompanyName,
		report.JobDescription,
		payload,
		report.CreatedAt,
	)
	return err
}

// GetByID returns a report owned by the user.
func (r *PGRepo) GetByID(ctx context.Context, userID, reportID string) (Report, error) {
	const query = `
SELECT id, user_id, job_title, company_name, job_description, fields, created_at
FROM reports
WHERE id = $1 AND user_id = $2
LIMIT 1`
	report, err := scanReport(r.DB.QueryRowContext(ctx, query, reportID, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return Report{}, ErrNotFound
	}
	return report, err
}

// CountByUser returns how many reports the user owns.
func (r *PGRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	const query = `SELECT COUNT(*) FROM reports WHERE user_id = $1`
	var count int
	if err := r.DB.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// ListByUser returns the user's reports, newest first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Report, error) {
	const query = `
SELECT id, user_id, job_title, company_name, job_description, fields, created_at
FROM reports
WHERE user_id = $1
ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Report
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, report)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReport(row rowScanner) (Report, error) {
	var report Report
	var payload []byte
	if err := row.Scan(
		&report.ID,
		&report.UserID,
		&report.JobTitle,
		&report.CompanyName,
		&report.JobDescription,
		&payload,
		&report.CreatedAt,
	); err != nil {
		return Report{}, err
	}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &report.Fields); err != nil {
			return Report{}, fmt.Errorf("unmarshal report fields: %w", err)
		}
	}
	return report, nil
}
