package master

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/pontohub/ponto-backend-go/internal/domain/master/function"
)

type FunctionServiceImpl struct {
	repo function.Repository
}

func NewFunctionService(repo function.Repository) function.Service {
	return &FunctionServiceImpl{repo: repo}
}

// Create implements function.Service.
func (s *FunctionServiceImpl) Create(ctx context.Context, req function.UpsertRequest) (*function.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByName(ctx, req.Name); err == nil {
		return nil, function.ErrNameTaken
	} else if !errors.Is(err, function.ErrNotFound) {
		return nil, err
	}

	f := &function.Function{
		ID:   uuid.NewString(),
		Name: req.Name,
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}

	return function.ToResponse(f), nil
}

// List implements function.Service.
func (s *FunctionServiceImpl) List(ctx context.Context) ([]*function.Response, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return function.ToResponses(items), nil
}

// Update implements function.Service.
func (s *FunctionServiceImpl) Update(ctx context.Context, id string, req function.UpsertRequest) (*function.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if existing, err := s.repo.GetByName(ctx, req.Name); err == nil && existing.ID != id {
		return nil, function.ErrNameTaken
	} else if err != nil && !errors.Is(err, function.ErrNotFound) {
		return nil, err
	}

	f.Name = req.Name
	if err := s.repo.Update(ctx, f); err != nil {
		return nil, err
	}

	return function.ToResponse(f), nil
}

// Delete implements function.Service.
func (s *FunctionServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
