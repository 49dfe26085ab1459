package utils

import (
	"errors"
	"testing"
	"time"
)

const testSymmetricKey = "0123456789abcdef0123456789abcdef"

func TestNewTokenIssuer_RejectsShortKey(t *testing.T) {
	if _, err := NewTokenIssuer("short"); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("expected ErrInvalidKey, got %v", err)
	}
}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer, err := NewTokenIssuer(testSymmetricKey)
	if err != nil {
		t.Fatal(err)
	}
	token, err := issuer.Generate("user_123")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	claims, err := issuer.Validate(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.DoctorID != "user_123" {
		t.Errorf("DoctorID = %q, want %q", claims.DoctorID, "user_123")
	}
}

func TestTokenIssuer_Expired(t *testing.T) {
	issuer, _ := NewTokenIssuer(testSymmetricKey)
	token, err := issuer.Generate("user_123")
	if err != nil {
		t.Fatal(err)
	}
	issuer.now = func() time.Time { return time.Now().Add(AccessTokenExpiry + time.Minute) }
	if _, err := issuer.Validate(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenIssuer_WrongKey(t *testing.T) {
	issuer, _ := NewTokenIssuer(testSymmetricKey)
	other, _ := NewTokenIssuer("fedcba9876543210fedcba9876543210")
	token, _ := issuer.Generate("user_123")
	if _, err := other.Validate(token); err == nil {
		t.Fatal("expected decrypt failure with a different key")
	}
}

func TestTokenIssuer_RequiresDoctor(t *testing.T) {
	issuer, _ := NewTokenIssuer(testSymmetricKey)
	if _, err := issuer.Generate(""); !errors.Is(err, ErrMissingDoctor) {
		t.Fatalf("expected ErrMissingDoctor, got %v", err)
	}
}
