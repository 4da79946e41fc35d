package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/Sandhya175/GrowlioBackend/internal/common"
)

func TestGenerateAndParseToken_RoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	tokenString, err := GenerateToken("acc-1", "alice", "a@x.com", "user", secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	claims, err := ParseToken(tokenString, secret)
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if claims.AccountID != "acc-1" || claims.Username != "alice" || claims.Email != "a@x.com" || claims.Role != "user" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestParseToken_Expired(t *testing.T) {
	secret := []byte("test-secret")

	tokenString, err := GenerateToken("acc-1", "alice", "a@x.com", "user", secret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = ParseToken(tokenString, secret)
	if !errors.Is(err, common.ErrTokenExpired) {
		t.Fatalf("want ErrTokenExpired, got %v", err)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	tokenString, err := GenerateToken("acc-1", "alice", "a@x.com", "user", []byte("right"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = ParseToken(tokenString, []byte("wrong"))
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken("not-a-token", []byte("s"))
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
}
