package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 15)

	token, err := svc.Generate("user789", []string{"ADMIN", "SUPPORT"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user789", claims.SubjectID)
	assert.Equal(t, []string{"ADMIN", "SUPPORT"}, claims.RoleNames())
}

func TestJWTService_Verify_WrongSecret(t *testing.T) {
	svc := NewJWTService("test-secret", 15)
	other := NewJWTService("different-secret", 15)

	token, err := svc.Generate("user789", nil)
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_Verify_Expired(t *testing.T) {
	svc := NewJWTService("test-secret", 0)

	now := time.Now().UTC().Add(-time.Hour)
	claims := &Claims{
		SubjectID: "user789",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	assert.Error(t, err)
}

func TestJWTService_Verify_RejectsUnexpectedSigningMethod(t *testing.T) {
	svc := NewJWTService("test-secret", 15)

	token := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{SubjectID: "user789"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	assert.Error(t, err)
}

func TestClaims_RoleNames_DropsNonStrings(t *testing.T) {
	claims := &Claims{
		Roles: []interface{}{"ADMIN", 42, nil, "support", map[string]interface{}{"x": 1}},
	}
	assert.Equal(t, []string{"ADMIN", "support"}, claims.RoleNames())
}

func TestClaims_RoleNames_EmptyClaim(t *testing.T) {
	claims := &Claims{}
	assert.Empty(t, claims.RoleNames())
}
