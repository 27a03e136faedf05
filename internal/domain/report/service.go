package report

import "context"

// DayOverviewLine is one user's punches in a department-wide day view.
type DayOverviewLine struct {
	UserID     string  `json:"user_id"`
	UserName   string  `json:"user_name"`
	Entry1     *string `json:"entry1"`
	Exit1      *string `json:"exit1"`
	Entry2     *string `json:"entry2"`
	Exit2      *string `json:"exit2"`
	TotalHours *string `json:"total_hours"`
	State      string  `json:"state"`
}

type DayOverview struct {
	Date                  string            `json:"date"`
	Lines                 []DayOverviewLine `json:"lines"`
	PendingJustifications int               `json:"pending_justifications"`
}

type Service interface {
	// Mine builds the authenticated user's report for a reference month.
	Mine(ctx context.Context, month string) (*MonthlyReport, error)
	// ForUser builds another user's report; manager or admin only.
	ForUser(ctx context.Context, userID, month string) (*MonthlyReport, error)
	// Day lists the punches of the manager's department for one date.
	Day(ctx context.Context, date string) (*DayOverview, error)
}
