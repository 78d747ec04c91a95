package users

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Upsert inserts the user or refreshes name, email, phone, and the anonymous
// flag on conflict. created_at is preserved for existing rows.
func (r *PGRepo) Upsert(ctx context.Context, u User) error {
	const query = `
INSERT INTO users (id, name, email, phone, is_anonymous, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO UPDATE SET
    name         = EXCLUDED.name,
    email        = EXCLUDED.email,
    phone        = EXCLUDED.phone,
    is_anonymous = EXCLUDED.is_anonymous,
    updated_at   = EXCLUDED.updated_at`

	_, err := r.DB.ExecContext(ctx, query,
		u.ID, u.Name, u.Email, u.Phone, u.IsAnonymous, u.CreatedAt, u.UpdatedAt)
	return err
}

// GetByID fetches a user by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (User, error) {
	const query = `
SELECT id, name, email, phone, is_anonymous, created_at, updated_at
FROM users
WHERE id = $1
LIMIT 1`

	var u User
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&u.ID, &u.Name, &u.Email, &u.Phone, &u.IsAnonymous, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

var _ Repo = (*PGRepo)(nil)
