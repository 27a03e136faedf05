package timesheet

import "context"

type Repository interface {
	Create(ctx context.Context, record *TimeRecord) error
	GetByID(ctx context.Context, id string) (*TimeRecord, error)
	GetByUserAndDate(ctx context.Context, userID, date string) (*TimeRecord, error)
	// GetByUserAndDateForUpdate locks the row for the duration of the
	// surrounding transaction so concurrent punches serialize.
	GetByUserAndDateForUpdate(ctx context.Context, userID, date string) (*TimeRecord, error)
	ListByUserAndRange(ctx context.Context, userID, startDate, endDate string) ([]*TimeRecord, error)
	ListByDate(ctx context.Context, date string) ([]*TimeRecord, error)
	Update(ctx context.Context, record *TimeRecord) error
}
