package justification

import "time"

type Type string

const (
	TypeAbsence    Type = "absence"
	TypeLate       Type = "late"
	TypeEarlyLeave Type = "early_leave"
	TypeOther      Type = "other"
)

func (t Type) Valid() bool {
	switch t {
	case TypeAbsence, TypeLate, TypeEarlyLeave, TypeOther:
		return true
	}
	return false
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Justification explains an absence or irregular punch to the manager.
type Justification struct {
	ID          string
	UserID      string
	Date        string // "YYYY-MM-DD"
	Type        Type
	Description string
	Status      Status
	ReviewedBy  *string
	ReviewedAt  *time.Time
	ReviewNote  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
