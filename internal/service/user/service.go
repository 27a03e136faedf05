package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pontohub/ponto-backend-go/internal/domain/master/department"
	"github.com/pontohub/ponto-backend-go/internal/domain/master/employmenttype"
	"github.com/pontohub/ponto-backend-go/internal/domain/master/function"
	"github.com/pontohub/ponto-backend-go/internal/domain/user"
	"github.com/pontohub/ponto-backend-go/internal/pkg/jwt"
)

// DefaultDailyWorkHours applies when a new user has no explicit contract hours.
const DefaultDailyWorkHours = "8.00"

type UserServiceImpl struct {
	userRepo user.Repository
	deptRepo department.Repository
	funcRepo function.Repository
	etRepo   employmenttype.Repository
}

func NewUserService(
	userRepo user.Repository,
	deptRepo department.Repository,
	funcRepo function.Repository,
	etRepo employmenttype.Repository,
) user.Service {
	return &UserServiceImpl{
		userRepo: userRepo,
		deptRepo: deptRepo,
		funcRepo: funcRepo,
		etRepo:   etRepo,
	}
}

// Create implements user.Service.
func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (*user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByUsername(ctx, req.Username); err == nil {
		return nil, user.ErrUsernameTaken
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return nil, err
	}

	if err := s.checkReferences(ctx, req.DepartmentID, req.FunctionID, req.EmploymentTypeID); err != nil {
		return nil, err
	}

	role := user.Role(req.Role)
	if role == user.RoleManager && req.DepartmentID == nil {
		return nil, user.ErrDepartmentMissing
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	dailyHours := req.DailyWorkHours
	if dailyHours == "" {
		dailyHours = DefaultDailyWorkHours
	}

	u := &user.User{
		ID:               uuid.NewString(),
		Username:         req.Username,
		PasswordHash:     string(hash),
		Name:             req.Name,
		CPF:              req.CPF,
		Role:             role,
		DepartmentID:     req.DepartmentID,
		FunctionID:       req.FunctionID,
		EmploymentTypeID: req.EmploymentTypeID,
		DailyWorkHours:   dailyHours,
		AdmissionDate:    parseDatePtr(req.AdmissionDate),
		BirthDate:        parseDatePtr(req.BirthDate),
		IsActive:         true,
	}

	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}

	return user.ToUserResponse(u), nil
}

func (s *UserServiceImpl) checkReferences(ctx context.Context, deptID, funcID, etID *string) error {
	if deptID != nil {
		if _, err := s.deptRepo.GetByID(ctx, *deptID); err != nil {
			return err
		}
	}
	if funcID != nil {
		if _, err := s.funcRepo.GetByID(ctx, *funcID); err != nil {
			return err
		}
	}
	if etID != nil {
		if _, err := s.etRepo.GetByID(ctx, *etID); err != nil {
			return err
		}
	}
	return nil
}

// GetByID implements user.Service.
func (s *UserServiceImpl) GetByID(ctx context.Context, id string) (*user.UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.ToUserResponse(u), nil
}

// List implements user.Service.
func (s *UserServiceImpl) List(ctx context.Context, filter user.ListFilter) ([]*user.UserResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	// Managers only ever see their own department.
	if claims.Role == user.RoleManager {
		if claims.DepartmentID == nil {
			return nil, user.ErrDepartmentMissing
		}
		filter.DepartmentID = claims.DepartmentID
	}

	users, err := s.userRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return user.ToUserResponses(users), nil
}

// Update implements user.Service.
func (s *UserServiceImpl) Update(ctx context.Context, id string, req user.UpdateUserRequest) (*user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Username != nil && *req.Username != u.Username {
		if _, err := s.userRepo.GetByUsername(ctx, *req.Username); err == nil {
			return nil, user.ErrUsernameTaken
		} else if !errors.Is(err, user.ErrUserNotFound) {
			return nil, err
		}
		u.Username = *req.Username
	}

	if err := s.checkReferences(ctx, req.DepartmentID, req.FunctionID, req.EmploymentTypeID); err != nil {
		return nil, err
	}

	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		u.PasswordHash = string(hash)
	}
	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.CPF != nil {
		u.CPF = req.CPF
	}
	if req.Role != nil {
		u.Role = user.Role(*req.Role)
	}
	if req.DepartmentID != nil {
		u.DepartmentID = req.DepartmentID
	}
	if req.FunctionID != nil {
		u.FunctionID = req.FunctionID
	}
	if req.EmploymentTypeID != nil {
		u.EmploymentTypeID = req.EmploymentTypeID
	}
	if req.DailyWorkHours != nil {
		u.DailyWorkHours = *req.DailyWorkHours
	}
	if req.AdmissionDate != nil {
		u.AdmissionDate = parseDatePtr(req.AdmissionDate)
	}
	if req.BirthDate != nil {
		u.BirthDate = parseDatePtr(req.BirthDate)
	}
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}

	if u.Role == user.RoleManager && u.DepartmentID == nil {
		return nil, user.ErrDepartmentMissing
	}

	if err := s.userRepo.Update(ctx, u); err != nil {
		return nil, err
	}

	return user.ToUserResponse(u), nil
}

// Delete implements user.Service.
func (s *UserServiceImpl) Delete(ctx context.Context, id string) error {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return err
	}
	if claims.UserID == id {
		return user.ErrCannotDeleteSelf
	}

	return s.userRepo.Delete(ctx, id)
}

// Me implements user.Service.
func (s *UserServiceImpl) Me(ctx context.Context) (*user.UserResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, claims.UserID)
}

func parseDatePtr(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}
