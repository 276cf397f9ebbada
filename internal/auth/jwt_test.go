package auth

import (
	"errors"
	"testing"
	"time"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager([]byte("super-secret"), time.Hour)

	tok, err := tm.Generate("user-123")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	gotUserID, err := tm.Parse(tok)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if gotUserID != "user-123" {
		t.Fatalf("userID mismatch: got %q want %q", gotUserID, "user-123")
	}
}

func TestParse_Expired(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager([]byte("secret"), -1*time.Second)

	tok, err := tm.Generate("u1")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	_, err = tm.Parse(tok)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenManager([]byte("right-secret"), time.Hour).Generate("u2")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	_, err = NewTokenManager([]byte("wrong-secret"), time.Hour).Parse(tok)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParse_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := NewTokenManager([]byte("k"), time.Hour).Parse("not.a.jwt")
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("SecurePass123!")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "SecurePass123!" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !CheckPassword(hash, "SecurePass123!") {
		t.Fatal("expected password to verify against its own hash")
	}
	if CheckPassword(hash, "wrong-password") {
		t.Fatal("expected mismatched password to fail verification")
	}
}
