package user

import "context"

type Service interface {
	// Create registers a new user; admin only.
	Create(ctx context.Context, req CreateUserRequest) (*UserResponse, error)
	GetByID(ctx context.Context, id string) (*UserResponse, error)
	// List returns users, optionally narrowed by department or role.
	List(ctx context.Context, filter ListFilter) ([]*UserResponse, error)
	// Update modifies a user; admin only.
	Update(ctx context.Context, id string, req UpdateUserRequest) (*UserResponse, error)
	// Delete removes a user; admin only, never the caller's own account.
	Delete(ctx context.Context, id string) error
	// Me returns the authenticated user's own profile.
	Me(ctx context.Context) (*UserResponse, error)
}
