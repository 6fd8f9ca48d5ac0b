package middleware

import (
	"net/http"
	"strings"

	"disruptive/models"
	"disruptive/utils"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// JWTAuthMiddleware verifies the bearer token and stores the resulting
// identity in the request context. It is the first pipeline step; every
// protected route group installs it before any role check.
func JWTAuthMiddleware(tokens *utils.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, utils.CodeInvalidToken, "Missing or invalid Authorization header", nil)
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		ident, err := tokens.Verify(tokenString)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, utils.CodeInvalidToken, "Invalid or expired token", nil)
			return
		}

		c.Set(identityKey, ident)
		c.Next()
	}
}

// IdentityFrom retrieves the authenticated identity stored by
// JWTAuthMiddleware.
func IdentityFrom(c *gin.Context) (*models.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	ident, ok := v.(*models.Identity)
	return ident, ok
}
