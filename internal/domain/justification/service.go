package justification

import "context"

type Service interface {
	// Create files a justification for the authenticated user.
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	// Mine lists the authenticated user's justifications.
	Mine(ctx context.Context) ([]*Response, error)
	// Pending lists open justifications visible to the caller: the whole
	// company for admins, the own department for managers.
	Pending(ctx context.Context) ([]*Response, error)
	// Review approves or rejects a pending justification.
	Review(ctx context.Context, id string, req ReviewRequest) (*Response, error)
}
