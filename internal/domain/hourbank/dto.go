package hourbank

import "time"

type EntryResponse struct {
	ID            string `json:"id"`
	UserID        string `json:"user_id"`
	Month         string `json:"month"`
	WorkedHours   string `json:"worked_hours"`
	ExpectedHours string `json:"expected_hours"`
	Balance       string `json:"balance"`
	ComputedAt    string `json:"computed_at"`
}

func ToEntryResponse(e *Entry) *EntryResponse {
	return &EntryResponse{
		ID:            e.ID,
		UserID:        e.UserID,
		Month:         e.Month,
		WorkedHours:   e.WorkedHours,
		ExpectedHours: e.ExpectedHours,
		Balance:       e.Balance,
		ComputedAt:    e.ComputedAt.Format(time.RFC3339),
	}
}

func ToEntryResponses(entries []*Entry) []*EntryResponse {
	out := make([]*EntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, ToEntryResponse(e))
	}
	return out
}
