package hourbank

import "errors"

var (
	ErrInvalidMonth  = errors.New("invalid month, expected YYYY-MM")
	ErrEntryNotFound = errors.New("hour bank entry not found")
)
