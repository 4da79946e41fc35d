// Package auth implements the stateless half of the session-token design:
// HS256-signed JWTs carrying identity claims. The stateful half (the stored
// session row) lives in the sessiontokens repository; validation requires
// both layers to agree.
package auth

import (
	"errors"
	"time"

	"github.com/Sandhya175/GrowlioBackend/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the identity assertions embedded in a session token. They are
// used downstream for authorization decisions; no authorization logic is
// performed here.
type Claims struct {
	jwt.RegisteredClaims
	AccountID string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// GenerateToken signs a token for the given identity, expiring after
// validityDuration.
func GenerateToken(accountID, username, email, role string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		AccountID: accountID,
		Username:  username,
		Email:     email,
		Role:      role,
	})

	return token.SignedString(secretKey)
}

// ParseToken verifies the signature and expiry of tokenString and returns
// its claims. Expired tokens map to common.ErrTokenExpired, everything else
// to common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrInvalidToken
		}
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
