package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chayachobi/summercamp-backend/internal/model"
	"github.com/chayachobi/summercamp-backend/internal/response"
)

// RoleResolver answers whether an account holds a role. Satisfied by
// service.UserService.
type RoleResolver interface {
	HasRole(ctx context.Context, email string, role model.Role) (bool, error)
}

// RequireRole checks the caller's stored role against the required one.
// Must run after RequireAuth; the role is read from the user store on every
// request so a promotion or demotion takes effect immediately.
func RequireRole(users RoleResolver, role model.Role) gin.HandlerFunc {
	code := response.ErrForbidden
	switch role {
	case model.RoleAdmin:
		code = response.ErrAdminAccessOnly
	case model.RoleInstructor:
		code = response.ErrInstructorOnly
	}

	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		ok, err := users.HasRole(c.Request.Context(), claims.Email, role)
		if err != nil {
			response.AbortFail(c, http.StatusInternalServerError, response.ErrInternal)
			return
		}
		if !ok {
			response.AbortFail(c, http.StatusForbidden, code)
			return
		}

		c.Next()
	}
}
