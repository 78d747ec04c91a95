package users

import "time"

// User is a stored user profile, keyed by the identity the request carried.
type User struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	IsAnonymous bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
