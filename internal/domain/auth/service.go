package auth

import "context"

type Service interface {
	// Login checks credentials and returns an access token plus the raw
	// refresh token the handler should set as a cookie.
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, string, error)
	// Refresh exchanges a valid refresh token for a new access token.
	Refresh(ctx context.Context, refreshToken string) (*RefreshResponse, error)
	// Logout revokes the given refresh token.
	Logout(ctx context.Context, refreshToken string) error
	// ChangePassword updates the authenticated user's password.
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error
	// RequestPasswordReset files a reset request for a locked-out user.
	// It is unauthenticated and does not reveal whether the user exists.
	RequestPasswordReset(ctx context.Context, req PasswordResetRequestInput) error
	// ListPasswordResets lists pending reset requests; admin only.
	ListPasswordResets(ctx context.Context) ([]*PasswordResetResponse, error)
	// ResolvePasswordReset approves (setting the new password) or rejects
	// a pending request; admin only.
	ResolvePasswordReset(ctx context.Context, id string, req ResolvePasswordResetRequest) error
}
