// Package auth issues and verifies the session tokens that identify end
// users. Tokens are minted by the identity platform in production; the
// server only needs the shared secret to verify them.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/memoria/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the user id and, optionally, the tenant the session was
// opened for.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
	Tenant string `json:"tenant,omitempty"`
}

// Session is the verified content of a token.
type Session struct {
	UserID string
	Tenant string
}

func GenerateToken(userID, tenant string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID: userID,
		Tenant: tenant,
	})

	return token.SignedString(secretKey)
}

// ParseToken verifies tokenString. Every failure, expiry included, is
// reported as common.ErrInvalidToken wrapping the cause.
func ParseToken(tokenString string, secretKey []byte) (Session, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Session{}, errors.Join(common.ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID == "" {
		return Session{}, common.ErrInvalidToken
	}

	return Session{UserID: claims.UserID, Tenant: claims.Tenant}, nil
}
