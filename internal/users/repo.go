package users

import "context"

// Repo is the persistence boundary for user profiles.
type Repo interface {
	// Upsert inserts the user or refreshes its mutable fields.
	Upsert(ctx context.Context, u User) error
	// GetByID returns a user, or ErrNotFound.
	GetByID(ctx context.Context, id string) (User, error)
}
