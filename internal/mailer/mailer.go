package mailer

import (
	"context"
	"fmt"

	"careervector/internal/config"
)

// Mailer performs one outbound send per call. No retries, no queueing: the
// caller decides what a failed send means.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// New selects the mail driver from configuration. Both drivers are
// functionally interchangeable; the choice is a deployment concern.
func New(cfg *config.Config) (Mailer, error) {
	switch cfg.MailDriver {
	case "brevo":
		return NewBrevoMailer(cfg.BrevoAPIKey, cfg.SenderName, cfg.SenderEmail)
	case "smtp":
		return NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SenderEmail)
	default:
		return nil, fmt.Errorf("unknown mail driver %q", cfg.MailDriver)
	}
}
