package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestSecrets(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-access-secret")
	t.Setenv("JWT_REFRESH_SECRET", "test-refresh-secret")
}

func TestAccessTokenRoundTrip(t *testing.T) {
	setTestSecrets(t)

	userID := uuid.New()
	token, err := CreateAccessToken(userID, []string{RoleCustomer}, "jo@example.com", "Jo")
	require.NoError(t, err)

	claims, err := ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, []string{RoleCustomer}, claims.Roles)
	assert.Equal(t, "jo@example.com", claims.Email)
	assert.Equal(t, "Jo", claims.Name)
}

func TestExpiredTokenIsClassifiedAsExpired(t *testing.T) {
	setTestSecrets(t)

	claims := &AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := signClaims(claims, accessSecret())
	require.NoError(t, err)

	_, err = ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTamperedTokenIsInvalid(t *testing.T) {
	setTestSecrets(t)

	token, err := CreateAccessToken(uuid.New(), []string{RoleCustomer}, "jo@example.com", "Jo")
	require.NoError(t, err)

	_, err = ValidateAccessToken(token + "x")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestRefreshTokenIsNotAnAccessToken(t *testing.T) {
	setTestSecrets(t)

	refresh, err := CreateRefreshToken(uuid.New())
	require.NoError(t, err)

	// Different signing secret, so the access validator must reject it.
	_, err = ValidateAccessToken(refresh)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	claims, err := ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, claims.Subject)
}

func TestNonHMACAlgorithmIsRejected(t *testing.T) {
	setTestSecrets(t)

	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	unsigned, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateAccessToken(unsigned)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
