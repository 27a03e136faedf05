package justification

import (
	"time"

	"github.com/pontohub/ponto-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	Date        string `json:"date"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs.Add("date", "date is required")
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs.Add("date", "date must be in YYYY-MM-DD format")
	}
	if validator.IsEmpty(r.Type) {
		errs.Add("type", "type is required")
	} else if !Type(r.Type).Valid() {
		errs.Add("type", "type must be absence, late, early_leave or other")
	}
	if validator.IsEmpty(r.Description) {
		errs.Add("description", "description is required")
	}

	if !errs.IsEmpty() {
		return errs
	}
	return nil
}

type ReviewRequest struct {
	Approve bool    `json:"approve"`
	Note    *string `json:"note,omitempty"`
}

type Response struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	ReviewedBy  *string `json:"reviewed_by,omitempty"`
	ReviewedAt  *string `json:"reviewed_at,omitempty"`
	ReviewNote  *string `json:"review_note,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

func ToResponse(j *Justification) *Response {
	resp := &Response{
		ID:          j.ID,
		UserID:      j.UserID,
		Date:        j.Date,
		Type:        string(j.Type),
		Description: j.Description,
		Status:      string(j.Status),
		ReviewedBy:  j.ReviewedBy,
		ReviewNote:  j.ReviewNote,
		CreatedAt:   j.CreatedAt.Format(time.RFC3339),
	}
	if j.ReviewedAt != nil {
		at := j.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &at
	}
	return resp
}

func ToResponses(items []*Justification) []*Response {
	out := make([]*Response, 0, len(items))
	for _, j := range items {
		out = append(out, ToResponse(j))
	}
	return out
}
