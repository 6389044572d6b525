package utils

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessClaims is the payload of short-lived API tokens. Refresh tokens carry
// only the registered claims (subject id).
type AccessClaims struct {
	Roles []string `json:"roles"`
	Email string   `json:"email"`
	Name  string   `json:"name"`
	jwt.RegisteredClaims
}

func accessSecret() []byte  { return []byte(os.Getenv("JWT_SECRET")) }
func refreshSecret() []byte { return []byte(os.Getenv("JWT_REFRESH_SECRET")) }

func accessTTL() time.Duration {
	minutes, err := strconv.Atoi(os.Getenv("JWT_EXPIRES_IN_MINUTES"))
	if err != nil || minutes <= 0 {
		minutes = 60
	}
	return time.Duration(minutes) * time.Minute
}

func refreshTTL() time.Duration {
	days, err := strconv.Atoi(os.Getenv("JWT_REFRESH_EXPIRES_IN_DAYS"))
	if err != nil || days <= 0 {
		days = 7
	}
	return time.Duration(days) * 24 * time.Hour
}

func CreateAccessToken(userID uuid.UUID, roles []string, email, name string) (string, error) {
	claims := &AccessClaims{
		Roles: roles,
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(accessTTL())),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return signClaims(claims, accessSecret())
}

func CreateRefreshToken(userID uuid.UUID) (string, error) {
	claims := &jwt.RegisteredClaims{
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(refreshTTL())),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	return signClaims(claims, refreshSecret())
}

func ValidateAccessToken(tokenString string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	if err := parseClaims(tokenString, claims, accessSecret()); err != nil {
		return nil, err
	}
	return claims, nil
}

func ValidateRefreshToken(tokenString string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	if err := parseClaims(tokenString, claims, refreshSecret()); err != nil {
		return nil, err
	}
	return claims, nil
}

func signClaims(claims jwt.Claims, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// parseClaims classifies verification failures so the boundary can tell an
// expired token apart from a forged or malformed one.
func parseClaims(tokenString string, claims jwt.Claims, secret []byte) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrTokenExpired
		}
		return ErrTokenInvalid
	}
	if !token.Valid {
		return ErrTokenInvalid
	}
	return nil
}
