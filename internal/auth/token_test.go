package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

// TestVerificationTokenRoundTrip проверяет выпуск и разбор токена.
func TestVerificationTokenRoundTrip(t *testing.T) {
	manager := NewTokenManager("test-secret", "budget-tracker", time.Hour)
	userID := uuid.New()

	token, err := manager.NewVerificationToken(userID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	parsed, err := manager.ParseVerificationToken(token)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if parsed != userID {
		t.Fatalf("expected %s, got %s", userID, parsed)
	}
}

// TestVerificationTokenWrongSecret проверяет отклонение чужой подписи.
func TestVerificationTokenWrongSecret(t *testing.T) {
	manager := NewTokenManager("test-secret", "budget-tracker", time.Hour)
	other := NewTokenManager("other-secret", "budget-tracker", time.Hour)

	token, err := manager.NewVerificationToken(uuid.New())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, err := other.ParseVerificationToken(token); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

// TestVerificationTokenExpired проверяет отклонение просроченного токена.
func TestVerificationTokenExpired(t *testing.T) {
	manager := NewTokenManager("test-secret", "budget-tracker", -time.Minute)

	token, err := manager.NewVerificationToken(uuid.New())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, err := manager.ParseVerificationToken(token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

// TestVerificationTokenGarbage проверяет отклонение мусорного ввода.
func TestVerificationTokenGarbage(t *testing.T) {
	manager := NewTokenManager("test-secret", "budget-tracker", time.Hour)

	if _, err := manager.ParseVerificationToken("not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}
