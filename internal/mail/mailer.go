package mail

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"

	"github.com/nsharma-dev/institute_admin/internal/config"
)

// Mailer delivers one message. The reset flow treats any returned error as
// a delivery failure and rolls the reset token back.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type SMTPMailer struct {
	Host     string
	Port     int
	Email    string
	Password string
	FromName string
	From     string
}

func NewSMTPMailer(cfg config.Config) *SMTPMailer {
	return &SMTPMailer{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Email:    cfg.SMTPEmail,
		Password: cfg.SMTPPassword,
		FromName: cfg.FromName,
		From:     cfg.FromEmail,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	if m.Host == "" {
		return errors.New("smtp is not configured")
	}

	msg := []byte(fmt.Sprintf(
		"From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n%s\r\n",
		m.FromName, m.From, to, subject, body,
	))

	addr := fmt.Sprintf("%s:%d", m.Host, m.Port)
	auth := smtp.PlainAuth("", m.Email, m.Password, m.Host)

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(addr, auth, m.From, []string{to}, msg)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
