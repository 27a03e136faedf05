package auth

import (
	"github.com/pontohub/ponto-backend-go/internal/domain/user"
	"github.com/pontohub/ponto-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs.Add("username", "username is required")
	}
	if validator.IsEmpty(r.Password) {
		errs.Add("password", "password is required")
	}

	if !errs.IsEmpty() {
		return errs
	}
	return nil
}

type LoginResponse struct {
	AccessToken string             `json:"access_token"`
	User        *user.UserResponse `json:"user"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (r *ChangePasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CurrentPassword) {
		errs.Add("current_password", "current_password is required")
	}
	if validator.IsEmpty(r.NewPassword) {
		errs.Add("new_password", "new_password is required")
	} else if len(r.NewPassword) < 6 {
		errs.Add("new_password", "new_password must be at least 6 characters")
	}

	if !errs.IsEmpty() {
		return errs
	}
	return nil
}

type PasswordResetRequestInput struct {
	Username string `json:"username"`
}

func (r *PasswordResetRequestInput) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs.Add("username", "username is required")
	}

	if !errs.IsEmpty() {
		return errs
	}
	return nil
}

type ResolvePasswordResetRequest struct {
	NewPassword string `json:"new_password,omitempty"`
	Approve     bool   `json:"approve"`
}

type PasswordResetResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	Status      string `json:"status"`
	RequestedAt string `json:"requested_at"`
}
