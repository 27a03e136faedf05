package hourbank

import "context"

type Repository interface {
	// Upsert inserts the entry or replaces the existing one for the
	// same user and month, so recalculation is idempotent.
	Upsert(ctx context.Context, entry *Entry) error
	GetByUserAndMonth(ctx context.Context, userID, month string) (*Entry, error)
	ListByUser(ctx context.Context, userID string) ([]*Entry, error)
}
