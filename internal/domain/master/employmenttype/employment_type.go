package employmenttype

import (
	"context"
	"errors"
	"time"

	"github.com/pontohub/ponto-backend-go/internal/pkg/validator"
)

var (
	ErrNotFound  = errors.New("employment type not found")
	ErrNameTaken = errors.New("employment type name already in use")
	ErrInUse     = errors.New("employment type still has users assigned")
)

// EmploymentType is a hiring regime, e.g. "CLT" or "Intern".
type EmploymentType struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type UpsertRequest struct {
	Name string `json:"name"`
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
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

func ToResponse(e *EmploymentType) *Response {
	return &Response{
		ID:        e.ID,
		Name:      e.Name,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
	}
}

func ToResponses(items []*EmploymentType) []*Response {
	out := make([]*Response, 0, len(items))
	for _, e := range items {
		out = append(out, ToResponse(e))
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
	Create(ctx context.Context, e *EmploymentType) error
	GetByID(ctx context.Context, id string) (*EmploymentType, error)
	GetByName(ctx context.Context, name string) (*EmploymentType, error)
	List(ctx context.Context) ([]*EmploymentType, error)
	Update(ctx context.Context, e *EmploymentType) error
	Delete(ctx context.Context, id string) error
}
