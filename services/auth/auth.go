package auth

import (
	"fmt"

	"disruptive/models"
	"disruptive/schema"
	"disruptive/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register creates an account and returns a signed token for it. The role
// defaults to "user" when the payload leaves it empty.
func (s *DefaultAuthService) Register(payload *schema.RegistrationPayload) (*AuthResponse, error) {
	existing, err := s.Repo.GetByEmail(payload.Email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check existing account", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, DuplicateEmailError{Email: payload.Email}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := models.RoleUser
	if payload.Role != "" {
		if parsed, ok := models.ParseRole(payload.Role); ok {
			role = parsed
		}
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     payload.Username,
		Email:        payload.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.Repo.Create(user); err != nil {
		return nil, err
	}

	return s.respond(user)
}

// Login verifies the credentials and returns a signed token.
func (s *DefaultAuthService) Login(payload *schema.CredentialsPayload) (*AuthResponse, error) {
	user, err := s.Repo.GetByEmail(payload.Email)
	if err != nil {
		utils.GetLogger().Error("Login: failed to fetch account", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if user == nil {
		return nil, InvalidCredentialsError{}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(payload.Password)); err != nil {
		return nil, InvalidCredentialsError{}
	}

	return s.respond(user)
}

func (s *DefaultAuthService) respond(user *models.User) (*AuthResponse, error) {
	token, err := s.Tokens.Generate(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &AuthResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
		Token:    token,
	}, nil
}
