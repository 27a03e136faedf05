package timesheet

import "errors"

var (
	ErrMalformedTime          = errors.New("malformed clock time, expected HH:MM")
	ErrPunchTooSoon           = errors.New("punch too soon after the previous one")
	ErrDayFull                = errors.New("all four punches already registered for this day")
	ErrPunchOutOfOrder        = errors.New("punches out of chronological order")
	ErrRecordNotFound         = errors.New("time record not found")
	ErrSameDayAdjustment      = errors.New("records cannot be adjusted on the same day")
	ErrAdjustmentWindowClosed = errors.New("adjustment window for this date has closed")
	ErrValidationFailed       = errors.New("validation failed")
)
