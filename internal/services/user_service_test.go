package services

import (
	"testing"

	"github.com/botboss/botboss-api/internal/dtos"
	"github.com/botboss/botboss-api/internal/models"
	"github.com/botboss/botboss-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seekerSignup() dtos.SignupRequest {
	return dtos.SignupRequest{
		Name:     "Sam",
		Email:    "sam@example.com",
		Password: "hunter2",
		Role:     models.RoleSeeker,
	}
}

func TestSignup(t *testing.T) {
	svc := NewUserService(store.NewMemStore())

	user, err := svc.Signup(seekerSignup())
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, models.RoleSeeker, user.Role)
	assert.Empty(t, user.CompanyName)
}

func TestSignupCompanyRequiresName(t *testing.T) {
	svc := NewUserService(store.NewMemStore())

	req := seekerSignup()
	req.Role = models.RoleCompany
	_, err := svc.Signup(req)
	require.ErrorIs(t, err, ErrBadRequest)

	req.CompanyName = "Acme"
	req.Website = "https://acme.example"
	user, err := svc.Signup(req)
	require.NoError(t, err)
	assert.Equal(t, "Acme", user.CompanyName)
	assert.Equal(t, "https://acme.example", user.Website)
}

func TestSignupRejectsUnknownRole(t *testing.T) {
	svc := NewUserService(store.NewMemStore())

	req := seekerSignup()
	req.Role = "admin"
	_, err := svc.Signup(req)
	require.ErrorIs(t, err, ErrBadRequest)
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc := NewUserService(store.NewMemStore())

	_, err := svc.Signup(seekerSignup())
	require.NoError(t, err)

	_, err = svc.Signup(seekerSignup())
	require.ErrorIs(t, err, ErrConflict)
}

func TestLogin(t *testing.T) {
	svc := NewUserService(store.NewMemStore())
	_, err := svc.Signup(seekerSignup())
	require.NoError(t, err)

	user, err := svc.Login("sam@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "Sam", user.Name)

	_, err = svc.Login("sam@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("nobody@example.com", "hunter2")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestListStripsPasswords(t *testing.T) {
	svc := NewUserService(store.NewMemStore())
	_, err := svc.Signup(seekerSignup())
	require.NoError(t, err)

	users, err := svc.List()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Empty(t, users[0].Password)
	assert.NotEmpty(t, users[0].Email)
}
