package mailer

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SMTPMailer sends email through a plain SMTP relay with AUTH PLAIN over
// STARTTLS-capable servers. net/smtp has no context support, so cancellation
// is bounded by the server's own timeouts.
type SMTPMailer struct {
	host string
	port string
	auth smtp.Auth
	from string
}

// NewSMTPMailer builds an SMTP driver.
func NewSMTPMailer(host, port, username, password, from string) (*SMTPMailer, error) {
	if host == "" {
		return nil, errors.New("SMTP_HOST not set")
	}
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}
	return &SMTPMailer{host: host, port: port, auth: auth, from: from}, nil
}

// Send delivers one message. The context is honored only up to submission.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := strings.Join([]string{
		"From: " + m.from,
		"To: " + to,
		"Subject: " + subject,
		"Message-ID: <" + uuid.New().String() + "@" + m.host + ">",
		"Date: " + time.Now().Format(time.RFC1123Z),
		"",
		body,
	}, "\r\n")

	addr := net.JoinHostPort(m.host, m.port)
	if err := smtp.SendMail(addr, m.auth, m.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}
