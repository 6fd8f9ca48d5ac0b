package auth

import (
	"testing"
	"time"

	"disruptive/models"
	"disruptive/schema"
	"disruptive/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	byEmail map[string]*models.User
}

func (r *fakeUserRepo) Create(user *models.User) error {
	cp := *user
	r.byEmail[user.Email] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	if u, ok := r.byEmail[email]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func newAuthService(t *testing.T) (*DefaultAuthService, *utils.TokenManager) {
	t.Helper()
	tokens, err := utils.NewTokenManager("test-secret", time.Hour)
	require.NoError(t, err)
	return &DefaultAuthService{
		Repo:   &fakeUserRepo{byEmail: make(map[string]*models.User)},
		Tokens: tokens,
	}, tokens
}

func TestRegisterAndLogin(t *testing.T) {
	svc, tokens := newAuthService(t)

	reg, err := svc.Register(&schema.RegistrationPayload{
		Username: "ana",
		Email:    "ana@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, reg.Role, "role defaults to user")
	assert.NotEmpty(t, reg.Token)

	resp, err := svc.Login(&schema.CredentialsPayload{
		Email:    "ana@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, reg.ID, resp.ID)

	ident, err := tokens.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, ident.Subject)
	assert.Equal(t, models.RoleUser, ident.Role)
}

func TestRegisterHonorsDeclaredRole(t *testing.T) {
	svc, _ := newAuthService(t)

	reg, err := svc.Register(&schema.RegistrationPayload{
		Username: "rita",
		Email:    "rita@example.com",
		Password: "secret1",
		Role:     "readers",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleReader, reg.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	payload := &schema.RegistrationPayload{Username: "ana", Email: "ana@example.com", Password: "secret1"}
	_, err := svc.Register(payload)
	require.NoError(t, err)

	_, err = svc.Register(payload)
	var dup DuplicateEmailError
	assert.ErrorAs(t, err, &dup)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register(&schema.RegistrationPayload{Username: "ana", Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.Login(&schema.CredentialsPayload{Email: "ana@example.com", Password: "wrong-1"})
	var bad InvalidCredentialsError
	assert.ErrorAs(t, err, &bad)
}

func TestLoginUnknownAccount(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Login(&schema.CredentialsPayload{Email: "ghost@example.com", Password: "secret1"})
	var bad InvalidCredentialsError
	assert.ErrorAs(t, err, &bad)
}
