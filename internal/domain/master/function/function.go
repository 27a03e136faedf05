package function

import (
	"context"
	"errors"
	"time"

	"github.com/pontohub/ponto-backend-go/internal/pkg/validator"
)

var (
	ErrNotFound  = errors.New("function not found")
	ErrNameTaken = errors.New("function name already in use")
	ErrInUse     = errors.New("function still has users assigned")
)

// Function is a job title, e.g. "Analyst" or "Technician".
type Function struct {
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

func ToResponse(f *Function) *Response {
	return &Response{
		ID:        f.ID,
		Name:      f.Name,
		CreatedAt: f.CreatedAt.Format(time.RFC3339),
	}
}

func ToResponses(items []*Function) []*Response {
	out := make([]*Response, 0, len(items))
	for _, f := range items {
		out = append(out, ToResponse(f))
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
	Create(ctx context.Context, f *Function) error
	GetByID(ctx context.Context, id string) (*Function, error)
	GetByName(ctx context.Context, name string) (*Function, error)
	List(ctx context.Context) ([]*Function, error)
	Update(ctx context.Context, f *Function) error
	Delete(ctx context.Context, id string) error
}
