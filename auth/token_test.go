package auth

import (
	"errors"
	"testing"
	"time"
)

func TestIssueAndValidate_Success(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("super-secret", 30*time.Minute)
	now := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

	tok, err := svc.Issue("johndoe", now)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	subject, err := svc.Validate(tok, now)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if subject != "johndoe" {
		t.Fatalf("subject mismatch: got %q want %q", subject, "johndoe")
	}
}

func TestValidate_ExpiryWindow(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("super-secret", 30*time.Minute)
	issued := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

	tok, err := svc.Issue("johndoe", issued)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := svc.Validate(tok, issued.Add(29*time.Minute)); err != nil {
		t.Fatalf("expected token valid at T+29m, got %v", err)
	}

	_, err = svc.Validate(tok, issued.Add(31*time.Minute))
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired at T+31m, got %v", err)
	}
}

func TestValidate_WrongSecret(t *testing.T) {
	t.Parallel()

	now := time.Now()
	tok, err := NewTokenService("right-secret", time.Hour).Issue("u1", now)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = NewTokenService("wrong-secret", time.Hour).Validate(tok, now)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for tampered signature, got %v", err)
	}
}

func TestValidate_Malformed(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("k", time.Hour)
	for _, tok := range []string{"", "garbage", "not.a.jwt"} {
		_, err := svc.Validate(tok, time.Now())
		if !errors.Is(err, ErrTokenMalformed) {
			t.Fatalf("expected ErrTokenMalformed for %q, got %v", tok, err)
		}
	}
}
