// Package auth mints and decodes the signed access and refresh tokens used
// by the authentication flows. Both token classes share one HS256 secret;
// they differ only in validity duration.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopcore/authsvc/internal/common"
)

// Claims is the claim set carried by issued tokens: the registered claims
// plus the subject's UserID.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// GenerateToken mints a signed token for userID that expires after
// validityDuration. Access and refresh tokens are minted through the same
// path with different durations.
func GenerateToken(userID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Decode verifies the signature and structure of tokenString and returns
// its claims. Any malformed, tampered, or expired token yields nil; Decode
// never fails with an error for bad input.
func Decode(tokenString string, secretKey []byte) *Claims {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil
	}

	return claims
}

// GetUserIDFromToken validates tokenString and extracts the subject's user
// id. Used by the HTTP middleware to resolve the authenticated user.
func GetUserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return "", err
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.UserID, nil
}
