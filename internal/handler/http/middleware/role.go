package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/nomina-ops/nomina-backend-go/internal/domain/user"
	"github.com/nomina-ops/nomina-backend-go/internal/handler/http/response"
)

// AdminOnly restricts configuration endpoints (rates, profiles) to admins.
func AdminOnly(next http.Handler) http.Handler {
	return requireRoles(next, user.RoleAdmin)
}

// EditorOnly restricts schedule and deduction mutations to users allowed
// to edit.
func EditorOnly(next http.Handler) http.Handler {
	return requireRoles(next, user.RoleAdmin, user.RoleOperator)
}

func requireRoles(next http.Handler, roles ...user.Role) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, err.Error())
			return
		}

		role, _ := claims["role"].(string)
		for _, allowed := range roles {
			if role == string(allowed) {
				next.ServeHTTP(w, r)
				return
			}
		}
		response.Forbidden(w, "Insufficient permissions")
	})
}
