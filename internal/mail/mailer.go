// Package mail отправляет приветственные письма через SMTP.
// Отправка — побочный эффект с политикой best-effort: регистрация
// считается успешной даже при недоступном SMTP-сервере.
package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"example.com/budget-tracker/backend/internal/config"
)

type Mailer struct {
	cfg config.MailConfig
}

// NewMailer создает отправителя почты по конфигурации SMTP.
func NewMailer(cfg config.MailConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// Enabled сообщает, настроен ли SMTP-транспорт.
func (m *Mailer) Enabled() bool {
	return m.cfg.Enabled()
}

// SendWelcome отправляет приветственное письмо со ссылкой подтверждения.
func (m *Mailer) SendWelcome(ctx context.Context, toEmail, username, verifyURL string) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return fmt.Errorf("set from address: %w", err)
	}
	if err := msg.To(toEmail); err != nil {
		return fmt.Errorf("set to address: %w", err)
	}

	msg.Subject("Welcome to Budget Tracker!")
	msg.SetBodyString(gomail.TypeTextPlain, welcomeBody(username, verifyURL))

	client, err := gomail.NewClient(m.cfg.Host,
		gomail.WithPort(m.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.cfg.Username),
		gomail.WithPassword(m.cfg.Password),
		gomail.WithTimeout(m.cfg.Timeout),
	)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send welcome mail: %w", err)
	}

	return nil
}

func welcomeBody(username, verifyURL string) string {
	return fmt.Sprintf(
		"Hello %s, welcome to our platform! We're excited to have you.\n\n"+
			"Please confirm your email address by opening the link below:\n%s\n",
		username, verifyURL)
}
