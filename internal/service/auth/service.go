package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/google/uuid"

	"github.com/pontohub/ponto-backend-go/internal/domain/auth"
	"github.com/pontohub/ponto-backend-go/internal/domain/user"
	"github.com/pontohub/ponto-backend-go/internal/pkg/clock"
	"github.com/pontohub/ponto-backend-go/internal/pkg/jwt"
	"github.com/pontohub/ponto-backend-go/internal/pkg/validator"
)

type AuthServiceImpl struct {
	userRepo    user.Repository
	refreshRepo auth.RefreshTokenRepository
	resetRepo   auth.PasswordResetRepository
	jwtService  jwt.Service
	clock       clock.Clock
}

func NewAuthService(
	userRepo user.Repository,
	refreshRepo auth.RefreshTokenRepository,
	resetRepo auth.PasswordResetRepository,
	jwtService jwt.Service,
	clk clock.Clock,
) auth.Service {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		refreshRepo: refreshRepo,
		resetRepo:   resetRepo,
		jwtService:  jwtService,
		clock:       clk,
	}
}

// Login implements auth.Service.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, string, error) {
	if err := req.Validate(); err != nil {
		return nil, "", err
	}

	u, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, "", auth.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	if !u.IsActive {
		return nil, "", user.ErrUserInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", auth.ErrInvalidCredentials
	}

	accessToken, _, err := s.jwtService.GenerateAccessToken(u.ID, u.Username, u.Role, u.DepartmentID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.refreshRepo.Store(ctx, u.ID, refreshToken, time.Unix(refreshExp, 0)); err != nil {
		return nil, "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &auth.LoginResponse{
		AccessToken: accessToken,
		User:        user.ToUserResponse(u),
	}, refreshToken, nil
}

// Refresh implements auth.Service.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (*auth.RefreshResponse, error) {
	stored, err := s.refreshRepo.Get(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	if !stored.Usable(s.clock.Now()) {
		return nil, auth.ErrInvalidRefreshToken
	}

	u, err := s.userRepo.GetByID(ctx, stored.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !u.IsActive {
		return nil, user.ErrUserInactive
	}

	accessToken, _, err := s.jwtService.GenerateAccessToken(u.ID, u.Username, u.Role, u.DepartmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &auth.RefreshResponse{AccessToken: accessToken}, nil
}

// Logout implements auth.Service.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	return s.refreshRepo.Revoke(ctx, refreshToken)
}

// ChangePassword implements auth.Service.
func (s *AuthServiceImpl) ChangePassword(ctx context.Context, req auth.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	u, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return auth.ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	u.PasswordHash = string(hash)
	if err := s.userRepo.Update(ctx, u); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	// Existing sessions stop refreshing after a password change.
	if err := s.refreshRepo.RevokeAllForUser(ctx, u.ID); err != nil {
		slog.Error("Failed to revoke refresh tokens after password change", "user_id", u.ID, "error", err)
	}

	return nil
}

// RequestPasswordReset implements auth.Service. It never reveals whether
// the username exists, so all outcomes look identical to the caller.
func (s *AuthServiceImpl) RequestPasswordReset(ctx context.Context, req auth.PasswordResetRequestInput) error {
	if err := req.Validate(); err != nil {
		return err
	}

	u, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	if _, err := s.resetRepo.GetPendingByUser(ctx, u.ID); err == nil {
		return nil
	} else if !errors.Is(err, auth.ErrResetRequestNotFound) {
		return fmt.Errorf("failed to check pending reset requests: %w", err)
	}

	request := &auth.PasswordResetRequest{
		ID:          uuid.NewString(),
		UserID:      u.ID,
		Status:      auth.ResetPending,
		RequestedAt: s.clock.Now(),
	}
	if err := s.resetRepo.Create(ctx, request); err != nil {
		return fmt.Errorf("failed to create reset request: %w", err)
	}

	slog.Info("Password reset requested", "user_id", u.ID)
	return nil
}

// ListPasswordResets implements auth.Service.
func (s *AuthServiceImpl) ListPasswordResets(ctx context.Context) ([]*auth.PasswordResetResponse, error) {
	requests, err := s.resetRepo.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reset requests: %w", err)
	}

	out := make([]*auth.PasswordResetResponse, 0, len(requests))
	for _, req := range requests {
		username := ""
		if u, err := s.userRepo.GetByID(ctx, req.UserID); err == nil {
			username = u.Username
		}
		out = append(out, &auth.PasswordResetResponse{
			ID:          req.ID,
			UserID:      req.UserID,
			Username:    username,
			Status:      string(req.Status),
			RequestedAt: req.RequestedAt.Format(time.RFC3339),
		})
	}

	return out, nil
}

// ResolvePasswordReset implements auth.Service.
func (s *AuthServiceImpl) ResolvePasswordReset(ctx context.Context, id string, req auth.ResolvePasswordResetRequest) error {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	request, err := s.resetRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if request.Status != auth.ResetPending {
		return auth.ErrResetRequestResolved
	}

	now := s.clock.Now()
	request.ResolvedAt = &now
	request.ResolvedBy = &claims.UserID

	if !req.Approve {
		request.Status = auth.ResetRejected
		return s.resetRepo.Update(ctx, request)
	}

	if validator.IsEmpty(req.NewPassword) || len(req.NewPassword) < 6 {
		var errs validator.ValidationErrors
		errs.Add("new_password", "new_password must be at least 6 characters")
		return errs
	}

	u, err := s.userRepo.GetByID(ctx, request.UserID)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	u.PasswordHash = string(hash)
	if err := s.userRepo.Update(ctx, u); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if err := s.refreshRepo.RevokeAllForUser(ctx, u.ID); err != nil {
		slog.Error("Failed to revoke refresh tokens after password reset", "user_id", u.ID, "error", err)
	}

	request.Status = auth.ResetApproved
	return s.resetRepo.Update(ctx, request)
}
