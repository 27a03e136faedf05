package department

import (
	"context"
	"errors"
	"time"

	"github.com/pontohub/ponto-backend-go/internal/pkg/validator"
)

var (
	ErrNotFound  = errors.New("department not found")
	ErrNameTaken = errors.New("department name already in use")
	ErrInUse     = errors.New("department still has users assigned")
)

type Department struct {
	ID        string
	Name      string
	ManagerID *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type UpsertRequest struct {
	Name      string  `json:"name"`
	ManagerID *string `json:"manager_id,omitempty"`
}

func (r *UpsertRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	}

	if !errs.IsEmpty() {
		return errs
	}
	return nil
}

type Response struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	ManagerID *string `json:"manager_id,omitempty"`
	CreatedAt string  `json:"created_at"`
}

func ToResponse(d *Department) *Response {
	return &Response{
		ID:        d.ID,
		Name:      d.Name,
		ManagerID: d.ManagerID,
		CreatedAt: d.CreatedAt.Format(time.RFC3339),
	}
}

func ToResponses(items []*Department) []*Response {
	out := make([]*Response, 0, len(items))
	for _, d := range items {
		out = append(out, ToResponse(d))
	}
	return out
}

type Service interface {
	Create(ctx context.Context, req UpsertRequest) (*Response, error)
	List(ctx context.Context) ([]*Response, error)
	Update(ctx context.Context, id string, req UpsertRequest) (*Response, error)
	Delete(ctx context.Context, id string) error
}

type Repository interface {
	Create(ctx context.Context, d *Department) error
	GetByID(ctx context.Context, id string) (*Department, error)
	GetByName(ctx context.Context, name string) (*Department, error)
	List(ctx context.Context) ([]*Department, error)
	Update(ctx context.Context, d *Department) error
	Delete(ctx context.Context, id string) error
}
