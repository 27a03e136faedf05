package timesheet

import (
	"time"

	"github.com/pontohub/ponto-backend-go/internal/pkg/validator"
)

type PunchRequest struct {
	// Time overrides the server clock; normally omitted.
	Time *string `json:"time,omitempty"`
}

type AdjustRecordRequest struct {
	Entry1 *string `json:"entry1"`
	Exit1  *string `json:"exit1"`
	Entry2 *string `json:"entry2"`
	Exit2  *string `json:"exit2"`
	Reason string  `json:"reason"`
}

func (r *AdjustRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	for field, value := range map[string]*string{
		"entry1": r.Entry1,
		"exit1":  r.Exit1,
		"entry2": r.Entry2,
		"exit2":  r.Exit2,
	} {
		if value == nil {
			continue
		}
		if _, err := ParseClockTime(*value); err != nil {
			errs.Add(field, "must be a valid HH:MM time")
		}
	}
	if validator.IsEmpty(r.Reason) {
		errs.Add("reason", "reason is required")
	}

	if !errs.IsEmpty() {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID         string  `json:"id"`
	UserID     string  `json:"user_id"`
	Date       string  `json:"date"`
	Entry1     *string `json:"entry1"`
	Exit1      *string `json:"exit1"`
	Entry2     *string `json:"entry2"`
	Exit2      *string `json:"exit2"`
	TotalHours *string `json:"total_hours"`
	State      string  `json:"state"`
	IsAdjusted bool    `json:"is_adjusted"`
	UpdatedAt  string  `json:"updated_at"`
}

func ToRecordResponse(r *TimeRecord) *RecordResponse {
	return &RecordResponse{
		ID:         r.ID,
		UserID:     r.UserID,
		Date:       r.Date,
		Entry1:     r.Entry1,
		Exit1:      r.Exit1,
		Entry2:     r.Entry2,
		Exit2:      r.Exit2,
		TotalHours: r.TotalHours,
		State:      r.State().String(),
		IsAdjusted: r.IsAdjusted,
		UpdatedAt:  r.UpdatedAt.Format(time.RFC3339),
	}
}

func ToRecordResponses(records []*TimeRecord) []*RecordResponse {
	out := make([]*RecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, ToRecordResponse(r))
	}
	return out
}
