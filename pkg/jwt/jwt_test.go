package jwt

import (
	"errors"
	"testing"
	"time"
)

func TestNewTokenService_EmptySecret(t *testing.T) {
	t.Parallel()

	if _, err := NewTokenService("", time.Hour); err == nil {
		t.Fatal("expected error for empty secret, got nil")
	}
}

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	srv, err := NewTokenService("super-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService error: %v", err)
	}

	tok, err := srv.Issue(42)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	userID, err := srv.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if userID != 42 {
		t.Fatalf("userID mismatch: got %d want 42", userID)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	srv, err := NewTokenService("secret", -1*time.Second)
	if err != nil {
		t.Fatalf("NewTokenService error: %v", err)
	}

	tok, err := srv.Issue(1)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := srv.Verify(tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer, err := NewTokenService("right-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService error: %v", err)
	}
	verifier, err := NewTokenService("wrong-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService error: %v", err)
	}

	tok, err := issuer.Issue(7)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := verifier.Verify(tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	srv, err := NewTokenService("k", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService error: %v", err)
	}

	if _, err := srv.Verify("not.a.jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for malformed token, got %v", err)
	}
}

func TestNewTokenService_DefaultExpiry(t *testing.T) {
	t.Parallel()

	srv, err := NewTokenService("secret", 0)
	if err != nil {
		t.Fatalf("NewTokenService error: %v", err)
	}
	if srv.expiry != DefaultExpiry {
		t.Fatalf("expected default expiry %v, got %v", DefaultExpiry, srv.expiry)
	}
}
