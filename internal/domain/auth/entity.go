package auth

import "time"

type ResetStatus string

const (
	ResetPending  ResetStatus = "pending"
	ResetApproved ResetStatus = "approved"
	ResetRejected ResetStatus = "rejected"
)

// PasswordResetRequest is raised by a locked-out user and resolved by an admin.
type PasswordResetRequest struct {
	ID          string
	UserID      string
	Status      ResetStatus
	RequestedAt time.Time
	ResolvedAt  *time.Time
	ResolvedBy  *string
}

// RefreshToken is stored hashed; the raw value only ever lives in the cookie.
type RefreshToken struct {
	ID        string
	UserID    string
	TokenHash string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}

func (t *RefreshToken) Usable(now time.Time) bool {
	return t.RevokedAt == nil && now.Before(t.ExpiresAt)
}
