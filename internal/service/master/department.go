package master

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/pontohub/ponto-backend-go/internal/domain/master/department"
)

type DepartmentServiceImpl struct {
	repo department.Repository
}

func NewDepartmentService(repo department.Repository) department.Service {
	return &DepartmentServiceImpl{repo: repo}
}

// Create implements department.Service.
func (s *DepartmentServiceImpl) Create(ctx context.Context, req department.UpsertRequest) (*department.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByName(ctx, req.Name); err == nil {
		return nil, department.ErrNameTaken
	} else if !errors.Is(err, department.ErrNotFound) {
		return nil, err
	}

	d := &department.Department{
		ID:        uuid.NewString(),
		Name:      req.Name,
		ManagerID: req.ManagerID,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}

	return department.ToResponse(d), nil
}

// List implements department.Service.
func (s *DepartmentServiceImpl) List(ctx context.Context) ([]*department.Response, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return department.ToResponses(items), nil
}

// Update implements department.Service.
func (s *DepartmentServiceImpl) Update(ctx context.Context, id string, req department.UpsertRequest) (*department.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if existing, err := s.repo.GetByName(ctx, req.Name); err == nil && existing.ID != id {
		return nil, department.ErrNameTaken
	} else if err != nil && !errors.Is(err, department.ErrNotFound) {
		return nil, err
	}

	d.Name = req.Name
	d.ManagerID = req.ManagerID
	if err := s.repo.Update(ctx, d); err != nil {
		return nil, err
	}

	return department.ToResponse(d), nil
}

// Delete implements department.Service.
func (s *DepartmentServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
