package users

import (
	"context"
	"strings"
	"time"
)

// Identity is what the auth layer knows about the caller.
type Identity struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	IsAnonymous bool
}

// Service contains business logic for user profiles.
type Service struct {
	Repo Repo
}

// UpsertFromAuth records or refreshes the profile for an authenticated caller
// and returns the stored user.
func (s *Service) UpsertFromAuth(ctx context.Context, id Identity) (User, error) {
	if strings.TrimSpace(id.ID) == "" {
		return User{}, ErrUnauthenticated
	}

	now := time.Now().UTC()
	u := User{
		ID:          id.ID,
		Name:        id.Name,
		Email:       id.Email,
		Phone:       id.Phone,
		IsAnonymous: id.IsAnonymous,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Upsert(ctx, u); err != nil {
		return User{}, err
	}
	return s.Repo.GetByID(ctx, u.ID)
}

// Get returns a stored user profile.
func (s *Service) Get(ctx context.Context, userID string) (User, error) {
	if strings.TrimSpace(userID) == "" {
		return User{}, ErrUnauthenticated
	}
	return s.Repo.GetByID(ctx, userID)
}

// DisplayName resolves the name shown for a user: the stored name, "Guest
// User" for anonymous users, the local part of the email, or "User".
func DisplayName(u User) string {
	if strings.TrimSpace(u.Name) != "" {
		return u.Name
	}
	if u.IsAnonymous {
		return "Guest User"
	}
	if at := strings.Index(u.Email, "@"); at > 0 {
		return u.Email[:at]
	}
	return "User"
}
