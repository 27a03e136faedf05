package timesheet

import "context"

type Service interface {
	// Punch registers the authenticated user's next punch for today.
	Punch(ctx context.Context, req PunchRequest) (*RecordResponse, error)
	// Today returns the authenticated user's record for the current date,
	// or an empty record when no punch was made yet.
	Today(ctx context.Context) (*RecordResponse, error)
	// ListMine returns the authenticated user's records in a date range.
	ListMine(ctx context.Context, startDate, endDate string) ([]*RecordResponse, error)
	// ListForUser returns another user's records; manager or admin only.
	ListForUser(ctx context.Context, userID, startDate, endDate string) ([]*RecordResponse, error)
	// Adjust rewrites a record's punches on behalf of a manager.
	Adjust(ctx context.Context, recordID string, req AdjustRecordRequest) (*RecordResponse, error)
}
