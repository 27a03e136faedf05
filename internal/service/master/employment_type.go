package master

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/pontohub/ponto-backend-go/internal/domain/master/employmenttype"
)

type EmploymentTypeServiceImpl struct {
	repo employmenttype.Repository
}

func NewEmploymentTypeService(repo employmenttype.Repository) employmenttype.Service {
	return &EmploymentTypeServiceImpl{repo: repo}
}

// Create implements employmenttype.Service.
func (s *EmploymentTypeServiceImpl) Create(ctx context.Context, req employmenttype.UpsertRequest) (*employmenttype.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByName(ctx, req.Name); err == nil {
		return nil, employmenttype.ErrNameTaken
	} else if !errors.Is(err, employmenttype.ErrNotFound) {
		return nil, err
	}

	e := &employmenttype.EmploymentType{
		ID:   uuid.NewString(),
		Name: req.Name,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}

	return employmenttype.ToResponse(e), nil
}

// List implements employmenttype.Service.
func (s *EmploymentTypeServiceImpl) List(ctx context.Context) ([]*employmenttype.Response, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return employmenttype.ToResponses(items), nil
}

// Update implements employmenttype.Service.
func (s *EmploymentTypeServiceImpl) Update(ctx context.Context, id string, req employmenttype.UpsertRequest) (*employmenttype.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if existing, err := s.repo.GetByName(ctx, req.Name); err == nil && existing.ID != id {
		return nil, employmenttype.ErrNameTaken
	} else if err != nil && !errors.Is(err, employmenttype.ErrNotFound) {
		return nil, err
	}

	e.Name = req.Name
	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}

	return employmenttype.ToResponse(e), nil
}

// Delete implements employmenttype.Service.
func (s *EmploymentTypeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
