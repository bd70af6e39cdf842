package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
)

const AccessTokenValidity = 15 * time.Minute

// GenerateAccessToken creates a new JWT access token
func GenerateAccessToken(userID uint, secret []byte) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"iat":     now.Unix(),
		"exp":     now.Add(AccessTokenValidity).Unix(),
	})

	return token.SignedString(secret)
}

// GenerateRefreshToken creates an opaque refresh token. Only its hash is
// stored on the user row.
func GenerateRefreshToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// HashToken returns the hex SHA-256 of a refresh token for storage and
// comparison.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ParseToken validates a signed access token and returns its claims.
func ParseToken(tokenString string, secret []byte) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}

// ParseTokenAllowExpired is ParseToken but tolerates an expired exp claim.
// The refresh flow uses it to identify the caller from a stale access token.
func ParseTokenAllowExpired(tokenString string, secret []byte) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		ve, ok := err.(*jwt.ValidationError)
		if !ok || ve.Errors&^jwt.ValidationErrorExpired != 0 {
			return nil, errors.New("invalid token")
		}
	}
	if token == nil {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}

// ExtractBearerToken pulls the token out of an Authorization header. The
// "Bearer" scheme is matched case-insensitively.
func ExtractBearerToken(authHeader string) (string, error) {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header format")
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", errors.New("invalid authorization header format")
	}

	return token, nil
}

// UserIDFromClaims reads the numeric user id claim. JWT numeric values decode
// as float64.
func UserIDFromClaims(claims jwt.MapClaims) (uint, error) {
	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return 0, errors.New("invalid user ID in token")
	}
	return uint(userIDFloat), nil
}

// IssuedAtFromClaims reads the iat claim, zero when absent.
func IssuedAtFromClaims(claims jwt.MapClaims) int64 {
	iat, ok := claims["iat"].(float64)
	if !ok {
		return 0
	}
	return int64(iat)
}
