package justification

import "context"

type Repository interface {
	Create(ctx context.Context, j *Justification) error
	GetByID(ctx context.Context, id string) (*Justification, error)
	GetByUserAndDate(ctx context.Context, userID, date string) (*Justification, error)
	ListByUser(ctx context.Context, userID string) ([]*Justification, error)
	ListPendingByDepartment(ctx context.Context, departmentID string) ([]*Justification, error)
	ListPending(ctx context.Context) ([]*Justification, error)
	Update(ctx context.Context, j *Justification) error
}
