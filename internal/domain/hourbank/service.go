package hourbank

import "context"

type Service interface {
	// Recalculate recomputes and stores a user's balance for one month.
	Recalculate(ctx context.Context, userID, month string) (*EntryResponse, error)
	// RecalculateAll refreshes the given month for every active user.
	RecalculateAll(ctx context.Context, month string) error
	// Mine returns the authenticated user's stored monthly entries.
	Mine(ctx context.Context) ([]*EntryResponse, error)
	// ForUser returns another user's entries; manager or admin only.
	ForUser(ctx context.Context, userID string) ([]*EntryResponse, error)
	// ForUserMonth returns one month's entry for a user, computing it
	// when no snapshot exists yet; manager or admin only.
	ForUserMonth(ctx context.Context, userID, month string) (*EntryResponse, error)
}
