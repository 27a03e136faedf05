package auth

import (
	"context"
	"time"
)

// RefreshTokenRepository persists refresh tokens. Implementations hash
// the raw token before storing or matching it.
type RefreshTokenRepository interface {
	Store(ctx context.Context, userID, token string, expiresAt time.Time) error
	Get(ctx context.Context, token string) (*RefreshToken, error)
	Revoke(ctx context.Context, token string) error
	RevokeAllForUser(ctx context.Context, userID string) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

type PasswordResetRepository interface {
	Create(ctx context.Context, req *PasswordResetRequest) error
	GetByID(ctx context.Context, id string) (*PasswordResetRequest, error)
	GetPendingByUser(ctx context.Context, userID string) (*PasswordResetRequest, error)
	ListPending(ctx context.Context) ([]*PasswordResetRequest, error)
	Update(ctx context.Context, req *PasswordResetRequest) error
}
