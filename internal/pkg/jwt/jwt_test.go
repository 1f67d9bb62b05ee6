package jwt

import (
	"testing"

	"github.com/attenda/timeclock-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() Service {
	return NewJWTService("test-secret-key-for-jwt", "1h", "24h")
}

func TestGenerateAccessToken(t *testing.T) {
	svc := newTestService()

	tokenString, expiresAt, err := svc.GenerateAccessToken("user-1", "frontdesk", "5001", user.RoleEmployee)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	username, _ := token.Get("username")
	assert.Equal(t, "frontdesk", username)
	role, _ := token.Get("role")
	assert.Equal(t, "employee", role)
	tokenType, _ := token.Get("type")
	assert.Equal(t, "access", tokenType)
	employeeID, _ := token.Get("employee_id")
	assert.Equal(t, "5001", employeeID)
}

func TestAccessTokenOmitsEmptyEmployeeID(t *testing.T) {
	svc := newTestService()

	tokenString, _, err := svc.GenerateAccessToken("user-2", "admin", "", user.RoleAdmin)
	require.NoError(t, err)

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	_, hasEmployeeID := token.Get("employee_id")
	assert.False(t, hasEmployeeID)
}

func TestDecodeRefreshToken(t *testing.T) {
	svc := newTestService()

	refreshToken, _, err := svc.GenerateRefreshToken("user-3")
	require.NoError(t, err)

	userID, err := svc.DecodeRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, "user-3", userID)
}

func TestDecodeRefreshTokenRejectsAccessToken(t *testing.T) {
	svc := newTestService()

	accessToken, _, err := svc.GenerateAccessToken("user-4", "frontdesk", "", user.RoleEmployee)
	require.NoError(t, err)

	_, err = svc.DecodeRefreshToken(accessToken)
	assert.Error(t, err)
}

func TestDecodeRefreshTokenRejectsForeignSecret(t *testing.T) {
	other := NewJWTService("a-completely-different-secret", "1h", "24h")
	refreshToken, _, err := other.GenerateRefreshToken("user-5")
	require.NoError(t, err)

	svc := newTestService()
	_, err = svc.DecodeRefreshToken(refreshToken)
	assert.Error(t, err)
}

func TestRevokeToken(t *testing.T) {
	svc := newTestService()

	refreshToken, _, err := svc.GenerateRefreshToken("user-6")
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(refreshToken))
	svc.RevokeToken(refreshToken)
	assert.True(t, svc.IsTokenRevoked(refreshToken))
}

func TestInvalidExpirationDuration(t *testing.T) {
	svc := NewJWTService("secret", "not-a-duration", "24h")

	_, _, err := svc.GenerateAccessToken("user-7", "frontdesk", "", user.RoleEmployee)
	assert.Error(t, err)
}
