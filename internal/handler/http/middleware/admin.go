package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/luvitbd/attendance-app-go/internal/domain/user"
	"github.com/luvitbd/attendance-app-go/internal/handler/http/response"
)

// AdminOnly restricts a route to the super-admin role.
func AdminOnly(next http.Handler) http.Handler {
	return requireRoles(next, user.RoleSuperAdmin)
}

// ReportAccess restricts a route to roles allowed to read reports.
func ReportAccess(next http.Handler) http.Handler {
	return requireRoles(next, user.RoleSuperAdmin, user.RoleInspect)
}

func requireRoles(next http.Handler, roles ...user.Role) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}
		for _, allowed := range roles {
			if user.Role(role) == allowed {
				next.ServeHTTP(w, r)
				return
			}
		}

		response.HandleError(w, user.ErrAdminPrivilegeRequired)
	})
}
