package services

import (
	"testing"

	"github.com/careerlane/job-portal/internal/auth"
	"github.com/careerlane/job-portal/internal/dtos"
	"github.com/careerlane/job-portal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_DefaultsRoleAndHashesPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")

	user, err := svc.Register(&dtos.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "password123", user.Password)
	assert.True(t, auth.CheckPassword("password123", user.Password))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")

	req := &dtos.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "password123"}
	_, err := svc.Register(req)
	require.NoError(t, err)

	_, err = svc.Register(req)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_IssuesTokenWithRoleSnapshot(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")

	registered, err := svc.Register(&dtos.RegisterRequest{
		Name:        "Rita",
		Email:       "rita@example.com",
		Password:    "password123",
		Role:        models.RoleRecruiter,
		CompanyName: "Acme",
	})
	require.NoError(t, err)

	user, token, err := svc.Login(&dtos.LoginRequest{Email: "rita@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	claims, err := auth.VerifyToken("test-secret", token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, claims.UserID)
	assert.Equal(t, models.RoleRecruiter, claims.Role)
}

func TestLogin_BadCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")

	_, err := svc.Register(&dtos.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "password123"})
	require.NoError(t, err)

	_, _, err = svc.Login(&dtos.LoginRequest{Email: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrBadCredentials)

	// unknown email gets the same error, no user enumeration
	_, _, err = svc.Login(&dtos.LoginRequest{Email: "nobody@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestGetUser_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")

	_, err := svc.GetUser(999)
	assert.ErrorIs(t, err, ErrNotFound)
}
