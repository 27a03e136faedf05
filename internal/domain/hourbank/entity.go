package hourbank

import "time"

// Entry is one user's hour-bank balance for one calendar month.
// Hours are decimal strings with two places; Balance may be negative.
type Entry struct {
	ID            string
	UserID        string
	Month         string // "YYYY-MM"
	WorkedHours   string
	ExpectedHours string
	Balance       string
	ComputedAt    time.Time
}

// WorkingDaysInMonth counts the Monday-to-Friday days of a calendar month.
func WorkingDaysInMonth(year int, month time.Month) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := 0
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			days++
		}
	}
	return days
}
