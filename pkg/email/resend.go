package email

import (
	"fmt"

	"github.com/resendlabs/resend-go"

	"github.com/givehub/backend/internal/config"
)

type EmailService struct {
	client   *resend.Client
	from     string
	fromName string
}

// NewEmailService returns nil when no API key is configured; callers
// treat a nil service as email disabled.
func NewEmailService(cfg config.EmailConfig) *EmailService {
	if cfg.APIKey == "" {
		return nil
	}
	return &EmailService{
		client:   resend.NewClient(cfg.APIKey),
		from:     cfg.FromAddress,
		fromName: cfg.FromName,
	}
}

func (s *EmailService) SendWelcomeEmail(to, name string) error {
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.fromName, s.from),
		To:      []string{to},
		Subject: "Welcome to GiveHub",
		Html: fmt.Sprintf(
			"<p>Hi %s,</p><p>Your account is ready. Thank you for joining our fundraising community.</p>",
			name,
		),
	}

	_, err := s.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	return nil
}
