package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerifyToken(t *testing.T) {
	token, err := IssueToken("test-secret", 42, "recruiter")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyToken("test-secret", token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "recruiter", claims.Role)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	token, err := IssueToken("test-secret", 1, "user")
	require.NoError(t, err)

	_, err = VerifyToken("other-secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_Garbage(t *testing.T) {
	_, err := VerifyToken("test-secret", "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_Tampered(t *testing.T) {
	token, err := IssueToken("test-secret", 1, "user")
	require.NoError(t, err)

	// flip a character in the signature
	tampered := token[:len(token)-2] + "xx"
	_, err = VerifyToken("test-secret", tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hashed)

	assert.True(t, CheckPassword("hunter22", hashed))
	assert.False(t, CheckPassword("hunter23", hashed))
	assert.False(t, CheckPassword("hunter22", "not-a-hash"))
}
