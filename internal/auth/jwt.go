// Package auth issues and verifies the session credential shared by the
// plain request path and the websocket handshake. Verification is stateless;
// callers decide what to do with the authenticated user ID.
package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

const TokenTTL = 7 * 24 * time.Hour

var (
	ErrNoToken      = errors.New("auth: no token provided")
	ErrInvalidToken = errors.New("auth: invalid token")
	ErrTokenExpired = errors.New("auth: token expired")
)

// Claims carries the authenticated user ID alongside the registered claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID uint `json:"userId"`
}

// GenerateToken signs an HS256 session token for the given user.
func GenerateToken(userID uint, secret []byte) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "pingo-service",
		},
		UserID: userID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// VerifyToken validates the credential and returns the user ID it was issued
// for. An empty token fails with ErrNoToken before any parsing happens.
func VerifyToken(tokenString string, secret []byte) (uint, error) {
	if tokenString == "" {
		return 0, ErrNoToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrInvalidToken
	}

	if !token.Valid || claims.UserID == 0 {
		return 0, ErrInvalidToken
	}

	return claims.UserID, nil
}
