package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/pontohub/ponto-backend-go/internal/domain/user"
	"github.com/pontohub/ponto-backend-go/internal/handler/http/response"
)

func requireRole(next http.Handler, allowed ...user.Role) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, "Missing access token")
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.Forbidden(w, "Permission denied")
			return
		}

		role := user.Role(roleStr)
		for _, a := range allowed {
			if role == a {
				next.ServeHTTP(w, r)
				return
			}
		}

		response.Forbidden(w, "Permission denied")
	})
}

// ManagerOnly passes managers and admins.
func ManagerOnly(next http.Handler) http.Handler {
	return requireRole(next, user.RoleManager, user.RoleAdmin)
}

// AdminOnly passes admins.
func AdminOnly(next http.Handler) http.Handler {
	return requireRole(next, user.RoleAdmin)
}
