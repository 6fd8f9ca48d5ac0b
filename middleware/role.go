package middleware

import (
	"net/http"

	"disruptive/models"
	"disruptive/utils"

	"github.com/gin-gonic/gin"
)

// RequireRole gates a route on the authenticated identity's role. It must run
// after JWTAuthMiddleware; a missing identity here is a wiring bug, not a
// client error.
func RequireRole(req models.Requirement) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := IdentityFrom(c)
		if !ok {
			utils.JSONError(c, http.StatusInternalServerError, utils.CodeInternal, "Role check reached without an authenticated identity", nil)
			return
		}

		if !ident.Role.Satisfies(req) {
			utils.JSONError(c, http.StatusForbidden, utils.CodeForbidden, "Insufficient role for this operation", nil)
			return
		}
		c.Next()
	}
}
