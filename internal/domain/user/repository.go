package user

import "context"

// UserRepository reads user profiles from the external user store.
type UserRepository interface {
	// GetUser retrieves a single profile by ID
	GetUser(ctx context.Context, id string) (Profile, error)

	// GetAllUsers retrieves profiles matching the filter
	GetAllUsers(ctx context.Context, filter Filter) ([]Profile, error)
}
