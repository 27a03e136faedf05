package jwt

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"

	"github.com/pontohub/ponto-backend-go/internal/domain/user"
)

// Claims is the identity carried by a verified access token.
type Claims struct {
	UserID       string
	Username     string
	Role         user.Role
	DepartmentID *string
}

// ClaimsFromContext extracts the authenticated identity placed in the
// context by the token verifier middleware.
func ClaimsFromContext(ctx context.Context) (*Claims, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return nil, fmt.Errorf("user_id claim is missing or invalid")
	}

	username, _ := claims["username"].(string)

	roleStr, ok := claims["role"].(string)
	if !ok || !user.Role(roleStr).Valid() {
		return nil, fmt.Errorf("role claim is missing or invalid")
	}

	out := &Claims{
		UserID:   userID,
		Username: username,
		Role:     user.Role(roleStr),
	}
	if dept, ok := claims["department_id"].(string); ok && dept != "" {
		out.DepartmentID = &dept
	}

	return out, nil
}
