package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/contactkeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	userID := "user-123"

	tok, err := GenerateToken(userID, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	if parts := strings.Split(tok, "."); len(parts) != 3 {
		t.Fatalf("expected three-segment token, got %q", tok)
	}

	gotUserID, err := GetUserIDFromToken(tok, secret)
	if err != nil {
		t.Fatalf("GetUserIDFromToken error: %v", err)
	}
	if gotUserID != userID {
		t.Fatalf("userID mismatch: got %q want %q", gotUserID, userID)
	}
}

func TestGenerateToken_PayloadShape(t *testing.T) {
	t.Parallel()

	secret := []byte("k")
	tok, err := GenerateToken("u-9", secret, 360000*time.Second)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(tok, claims, func(*jwt.Token) (any, error) { return secret, nil }); err != nil {
		t.Fatalf("parse error: %v", err)
	}

	user, ok := claims["user"].(map[string]any)
	if !ok || user["id"] != "u-9" {
		t.Fatalf("expected user.id claim, got %v", claims)
	}

	iat, _ := claims["iat"].(float64)
	exp, _ := claims["exp"].(float64)
	if exp-iat != 360000 {
		t.Fatalf("expected 360000s validity, got %v", exp-iat)
	}
}

func TestGenerateToken_EmptySecret(t *testing.T) {
	t.Parallel()

	if _, err := GenerateToken("u1", nil, time.Hour); err == nil {
		t.Fatalf("expected error for empty secret")
	}
}

func TestGetUserIDFromToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	tok, err := GenerateToken("u1", secret, -1*time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = GetUserIDFromToken(tok, secret)
	if !errors.Is(err, common.ErrTokenExpired) {
		t.Fatalf("expected common.ErrTokenExpired, got %v", err)
	}
}

func TestGetUserIDFromToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("u2", []byte("right-secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = GetUserIDFromToken(tok, []byte("wrong-secret"))
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestGetUserIDFromToken_Malformed(t *testing.T) {
	t.Parallel()

	_, err := GetUserIDFromToken("not.a.jwt", []byte("k"))
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer("jwt-secret", time.Hour)
	tok, err := issuer.Issue("abc")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	id, err := GetUserIDFromToken(tok, []byte("jwt-secret"))
	if err != nil || id != "abc" {
		t.Fatalf("GetUserIDFromToken: got (%q, %v)", id, err)
	}
}
