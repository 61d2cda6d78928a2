package mailer

import (
	"context"

	"github.com/nexapay/crypto-desk/internal/logger"
	"gopkg.in/gomail.v2"
)

// SMTPMailer dispatches HTML emails over SMTP. Sends are best-effort from
// the caller's point of view; the caller decides whether a failure matters.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// New creates a new SMTPMailer.
func New(host string, port int, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// Send delivers a single HTML email.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, html string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)

	err := m.dialer.DialAndSend(msg)

	logger.Log.Infow(
		"to", to,
		"subject", subject,
		"error", err,
	)

	return err
}
