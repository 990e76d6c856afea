package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestSignAndVerifyRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := SignJWT(Claims{ID: "acct-1", Email: "priya.sharma@example.com", Role: "candidate"})
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}
	if strings.Count(token, ".") != 2 {
		t.Fatalf("expected three segments, got %q", token)
	}

	claims, err := VerifyJWT(token)
	if err != nil {
		t.Fatalf("VerifyJWT: %v", err)
	}
	if claims.ID != "acct-1" || claims.Email != "priya.sharma@example.com" || claims.Role != "candidate" {
		t.Fatalf("unexpected claims %+v", claims)
	}
	if claims.Exp-claims.Iat != int64(TokenTTL/time.Second) {
		t.Fatalf("expected one day expiry, got %d seconds", claims.Exp-claims.Iat)
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := SignJWT(Claims{ID: "acct-1"})
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}

	t.Setenv("JWT_SECRET", "other-secret")
	if _, err := VerifyJWT(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	issued := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	now = func() time.Time { return issued }
	t.Cleanup(func() { now = time.Now })

	token, err := SignJWT(Claims{ID: "acct-1"})
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}

	now = func() time.Time { return issued.Add(TokenTTL + time.Minute) }
	if _, err := VerifyJWT(token); !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestSignRequiresSecretInProduction(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("JWT_SECRET", "")
	if _, err := SignJWT(Claims{ID: "acct-1"}); err == nil {
		t.Fatalf("expected missing secret error")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if err := CheckPassword(hash, "s3cret!"); err != nil {
		t.Fatalf("CheckPassword: %v", err)
	}
	if err := CheckPassword(hash, "wrong"); !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("expected mismatch, got %v", err)
	}
	if err := CheckPassword("", "anything"); !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("expected mismatch for empty hash, got %v", err)
	}
}
