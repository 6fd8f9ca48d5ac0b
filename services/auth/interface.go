package auth

import (
	userRepo "disruptive/database/repository/user"
	"disruptive/models"
	"disruptive/schema"
	"disruptive/utils"
)

// AuthService issues the signed tokens the rest of the API consumes.
type AuthService interface {
	Register(payload *schema.RegistrationPayload) (*AuthResponse, error)
	Login(payload *schema.CredentialsPayload) (*AuthResponse, error)
}

// DefaultAuthService is the production implementation.
type DefaultAuthService struct {
	Repo   userRepo.UserRepository
	Tokens *utils.TokenManager
}

// AuthResponse carries the account details and the signed token.
type AuthResponse struct {
	ID       string      `json:"id"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Role     models.Role `json:"role"`
	Token    string      `json:"token"`
}
