package justification

import "errors"

var (
	ErrNotFound         = errors.New("justification not found")
	ErrAlreadyReviewed  = errors.New("justification already reviewed")
	ErrDuplicateForDate = errors.New("a justification already exists for this date")
	ErrNotOwner         = errors.New("justification belongs to another user")
)
