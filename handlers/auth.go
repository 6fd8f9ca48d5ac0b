package handlers

import (
	"net/http"

	"disruptive/middleware"
	"disruptive/schema"
	"disruptive/services/auth"
	"disruptive/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	Service auth.AuthService
	Schemas *schema.Validator
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(svc auth.AuthService, schemas *schema.Validator) *AuthHandler {
	return &AuthHandler{Service: svc, Schemas: schemas}
}

// RegisterHandler handles POST /auth/register.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	payload, err := h.Schemas.Validate(schema.KindRegistration, c.Request.Body)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp, err := h.Service.Register(payload.(*schema.RegistrationPayload))
	if err != nil {
		getLogger().Warn("Registration failed", zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler handles POST /auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	payload, err := h.Schemas.Validate(schema.KindCredentials, c.Request.Body)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp, err := h.Service.Login(payload.(*schema.CredentialsPayload))
	if err != nil {
		getLogger().Warn("Login failed", zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// VerifyHandler handles GET /auth/verify and echoes the authenticated
// identity back to the caller.
func (h *AuthHandler) VerifyHandler(c *gin.Context) {
	ident, ok := middleware.IdentityFrom(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, utils.CodeInvalidToken, "Not authenticated", nil)
		return
	}
	c.JSON(http.StatusOK, ident)
}
