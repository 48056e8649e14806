package users

import (
	"context"
	"database/sql"
	"errors"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Upsert(ctx context.Context, user User) error {
	const query = `
INSERT INTO users (id, email, full_name, given_name, family_name, picture_url, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, now(), now())
ON CONFLICT (id) DO UPDATE SET
  email = EXCLUDED.email,
  full_name = EXCLUDED.full_name,
  given_name = EXCLUDED.given_name,
  family_name = EXCLUDED.family_name,
  picture_url = EXCLUDED.picture_url,
  updated_at = now()`
	// Profile columns are NOT NULL with an empty-string default; bind ""
	// rather than NULL so accounts without a name or picture still insert.
	_, err := r.DB.ExecContext(ctx, query,
		user.ID,
		user.Email,
		user.FullName,
		user.GivenName,
		user.FamilyName,
		user.PictureURL,
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, userID string) (User, error) {
	const query = `
SELECT id, email, full_name, given_name, family_name, picture_url, created_at, updated_at
FROM users
WHERE id = $1
LIMIT 1`
	var user User
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&user.ID,
		&user.Email,
		&user.FullName,
		&user.GivenName,
		&user.FamilyName,
		&user.PictureURL,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return user, nil
}
