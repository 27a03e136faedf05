package auth

import "errors"

var (
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrInvalidRefreshToken  = errors.New("invalid or expired refresh token")
	ErrWrongPassword        = errors.New("current password is incorrect")
	ErrResetRequestNotFound = errors.New("password reset request not found")
	ErrResetRequestResolved = errors.New("password reset request already resolved")
	ErrResetRequestPending  = errors.New("a password reset request is already pending")
)
