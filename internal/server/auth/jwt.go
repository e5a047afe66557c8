// Package auth issues and verifies session tokens and hashes passwords.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/contactkeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

var errEmptySecret = errors.New("empty signing secret")

// UserClaim identifies the account a token was issued for.
type UserClaim struct {
	ID string `json:"id"`
}

// Claims is the token payload: {"user":{"id":...}} plus iat/exp.
type Claims struct {
	User UserClaim `json:"user"`
	jwt.RegisteredClaims
}

// GenerateToken signs an HS256 token for userID valid for validityDuration.
func GenerateToken(userID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	if len(secretKey) == 0 {
		return "", errEmptySecret
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		User: UserClaim{ID: userID},
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", fmt.Errorf("token signing error: %w", err)
	}

	return tokenString, nil
}

// GetUserIDFromToken verifies tokenString and returns the embedded user id.
// Expired tokens yield common.ErrTokenExpired, anything else that fails
// verification wraps common.ErrInvalidToken.
func GetUserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid || claims.User.ID == "" {
		return "", common.ErrInvalidToken
	}

	return claims.User.ID, nil
}

// TokenIssuer signs session tokens with a fixed secret and validity.
type TokenIssuer struct {
	secret   []byte
	validity time.Duration
}

func NewTokenIssuer(secret string, validity time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), validity: validity}
}

func (i *TokenIssuer) Issue(userID string) (string, error) {
	return GenerateToken(userID, i.secret, i.validity)
}
