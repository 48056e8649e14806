package usage

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

type pgStore struct {
	DB    *sql.DB
	limit int
}

// NewPGStore constructs a Postgres-backed usage store.
func NewPGStore(db *sql.DB, limit int) *pgStore {
	if limit <= 0 {
		limit = DefaultScanLimit
	}
	return &pgStore{DB: db, limit: limit}
}

func (s *pgStore) Get(ctx context.Context, userID string) (Usage, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return Usage{}, err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()
	u, err := s.lockAndEnsure(ctx, tx, userID)
	if err != nil {
		return Usage{}, err
	}
	if err = tx.Commit(); err != nil {
		return Usage{}, err
	}
	return u, nil
}

func (s *pgStore) Consume(ctx context.Context, userID string, n int) (Usage, error) {
	if n <= 0 {
		return s.Get(ctx, userID)
	}
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return Usage{}, err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	u, err := s.lockAndEnsure(ctx, tx, userID)
	if err != nil {
		return Usage{}, err
	}

	if u.Used+n > u.Limit {
		err = ErrLimitReached
		return Usage{}, err
	}
	u.Used += n
	u.UpdatedAt = time.Now().UTC()
	if _, err = tx.ExecContext(ctx, `
UPDATE usage SET used = $1, updated_at = $2 WHERE user_id = $3`, u.Used, u.UpdatedAt, userID); err != nil {
		return Usage{}, err
	}
	if err = tx.Commit(); err != nil {
		return Usage{}, err
	}
	return u, nil
}

func (s *pgStore) Refund(ctx context.Context, userID string, n int) (Usage, error) {
	if n <= 0 {
		return s.Get(ctx, userID)
	}
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return Usage{}, err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	u, err := s.lockAndEnsure(ctx, tx, userID)
	if err != nil {
		return Usage{}, err
	}

	u.Used -= n
	if u.Used < 0 {
		u.Used = 0
	}
	u.UpdatedAt = time.Now().UTC()
	if _, err = tx.ExecContext(ctx, `
UPDATE usage SET used = $1, updated_at = $2 WHERE user_id = $3`, u.Used, u.UpdatedAt, userID); err != nil {
		return Usage{}, err
	}
	if err = tx.Commit(); err != nil {
		return Usage{}, err
	}
	return u, nil
}

func (s *pgStore) Reset(ctx context.Context, userID string) (Usage, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return Usage{}, err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()
	now := time.Now().UTC()
	if _, err = tx.ExecContext(ctx, `
INSERT INTO usage (user_id, plan, limit_amount, used, updated_at)
VALUES ($1, 'Free', $2, 0, $3)
ON CONFLICT (user_id) DO UPDATE SET used = 0, updated_at = EXCLUDED.updated_at`, userID, s.limit, now); err != nil {
		return Usage{}, err
	}
	if err = tx.Commit(); err != nil {
		return Usage{}, err
	}
	return Usage{Plan: "Free", Limit: s.limit, Used: 0, UpdatedAt: now}, nil
}

func (s *pgStore) lockAndEnsure(ctx context.Context, tx *sql.Tx, userID string) (Usage, error) {
	var u Usage
	row := tx.QueryRowContext(ctx, `
SELECT plan, limit_amount, used, updated_at FROM usage WHERE user_id = $1 FOR UPDATE`, userID)
	err := row.Scan(&u.Plan, &u.Limit, &u.Used, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			u = defaultUsage(s.limit)
			u.UpdatedAt = time.Now().UTC()
			if _, err = tx.ExecContext(ctx, `
INSERT INTO usage (user_id, plan, limit_amount, used, updated_at) VALUES ($1, $2, $3, $4, $5)`,
				userID, u.Plan, u.Limit, u.Used, u.UpdatedAt); err != nil {
				return Usage{}, err
			}
			return u, nil
		}
		return Usage{}, err
	}
	return u, nil
}
