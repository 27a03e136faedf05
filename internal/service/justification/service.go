package justification

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pontohub/ponto-backend-go/internal/domain/justification"
	"github.com/pontohub/ponto-backend-go/internal/domain/user"
	"github.com/pontohub/ponto-backend-go/internal/pkg/clock"
	"github.com/pontohub/ponto-backend-go/internal/pkg/jwt"
)

type JustificationServiceImpl struct {
	repo     justification.Repository
	userRepo user.Repository
	clock    clock.Clock
}

func NewJustificationService(
	repo justification.Repository,
	userRepo user.Repository,
	clk clock.Clock,
) justification.Service {
	return &JustificationServiceImpl{
		repo:     repo,
		userRepo: userRepo,
		clock:    clk,
	}
}

// Create implements justification.Service. One justification per user
// and date; a second submission for the same day is rejected.
func (s *JustificationServiceImpl) Create(ctx context.Context, req justification.CreateRequest) (*justification.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByUserAndDate(ctx, claims.UserID, req.Date); err == nil {
		return nil, justification.ErrDuplicateForDate
	} else if !errors.Is(err, justification.ErrNotFound) {
		return nil, err
	}

	j := &justification.Justification{
		ID:          uuid.NewString(),
		UserID:      claims.UserID,
		Date:        req.Date,
		Type:        justification.Type(req.Type),
		Description: req.Description,
		Status:      justification.StatusPending,
		CreatedAt:   s.clock.Now(),
	}

	if err := s.repo.Create(ctx, j); err != nil {
		return nil, err
	}

	return justification.ToResponse(j), nil
}

// Mine implements justification.Service.
func (s *JustificationServiceImpl) Mine(ctx context.Context) ([]*justification.Response, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.ListByUser(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	return justification.ToResponses(items), nil
}

// Pending implements justification.Service.
func (s *JustificationServiceImpl) Pending(ctx context.Context) ([]*justification.Response, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	switch claims.Role {
	case user.RoleAdmin:
		items, err := s.repo.ListPending(ctx)
		if err != nil {
			return nil, err
		}
		return justification.ToResponses(items), nil
	case user.RoleManager:
		if claims.DepartmentID == nil {
			return nil, user.ErrDepartmentMissing
		}
		items, err := s.repo.ListPendingByDepartment(ctx, *claims.DepartmentID)
		if err != nil {
			return nil, err
		}
		return justification.ToResponses(items), nil
	}

	return nil, user.ErrPermissionDenied
}

// Review implements justification.Service.
func (s *JustificationServiceImpl) Review(ctx context.Context, id string, req justification.ReviewRequest) (*justification.Response, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if claims.Role == user.RoleEmployee {
		return nil, user.ErrPermissionDenied
	}

	j, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if j.Status != justification.StatusPending {
		return nil, justification.ErrAlreadyReviewed
	}

	if claims.Role == user.RoleManager {
		target, err := s.userRepo.GetByID(ctx, j.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up justification owner: %w", err)
		}
		if claims.DepartmentID == nil || target.DepartmentID == nil || *claims.DepartmentID != *target.DepartmentID {
			return nil, user.ErrPermissionDenied
		}
	}

	now := s.clock.Now()
	j.Status = justification.StatusRejected
	if req.Approve {
		j.Status = justification.StatusApproved
	}
	j.ReviewedBy = &claims.UserID
	j.ReviewedAt = &now
	j.ReviewNote = req.Note

	if err := s.repo.Update(ctx, j); err != nil {
		return nil, err
	}

	return justification.ToResponse(j), nil
}
