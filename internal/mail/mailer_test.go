package mail

import (
	"strings"
	"testing"

	"example.com/budget-tracker/backend/internal/config"
)

// TestWelcomeBody проверяет текст приветственного письма.
func TestWelcomeBody(t *testing.T) {
	body := welcomeBody("alice", "http://localhost:8080/api/v1/auth/verify?token=abc")

	if !strings.Contains(body, "Hello alice, welcome to our platform!") {
		t.Fatalf("expected greeting in body, got %q", body)
	}
	if !strings.Contains(body, "verify?token=abc") {
		t.Fatalf("expected verification link in body, got %q", body)
	}
}

// TestMailerEnabled проверяет признак настроенного транспорта.
func TestMailerEnabled(t *testing.T) {
	if NewMailer(config.MailConfig{}).Enabled() {
		t.Fatal("expected mailer disabled without configuration")
	}

	mailer := NewMailer(config.MailConfig{Host: "smtp.example.com", From: "noreply@example.com"})
	if !mailer.Enabled() {
		t.Fatal("expected mailer enabled")
	}
}
