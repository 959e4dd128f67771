package email

import (
	"context"
	"errors"
	"os"
	"strings"

	"studio_pricing/internal/infrastructure/logging"
	"studio_pricing/internal/usecase/interfaces"

	"github.com/resend/resend-go/v2"
)

var ErrMissingResendAPIKey = errors.New("missing RESEND_API_KEY")
var ErrResendMailerNotConfigured = errors.New("resend mailer not configured")

// ResendMailer delivers transactional email through the Resend API.
//
// Mock mode (EMAIL_MOCK=1) logs the message and reports success without
// calling the provider; local stacks and CI run without an API key.

type ResendMailer struct {
	client   *resend.Client
	from     string
	mockMode bool
}

var _ interfaces.IMailer = (*ResendMailer)(nil)

func NewResendMailer(apiKey, from string) (*ResendMailer, error) {
	log := logging.L("email.resend")

	if isEmailMockEnabled() {
		log.Infow("mock mode enabled")
		return &ResendMailer{from: from, mockMode: true}, nil
	}

	if apiKey == "" {
		log.Warnw("missing RESEND_API_KEY")
		return nil, ErrMissingResendAPIKey
	}

	return &ResendMailer{client: resend.NewClient(apiKey), from: from}, nil
}

func (m *ResendMailer) Send(ctx context.Context, msg interfaces.Email) error {
	log := logging.L("email.resend")

	if m != nil && m.mockMode {
		log.Infow("mock send", "to", msg.To, "subject", msg.Subject, "html_len", len(msg.HTML))
		return nil
	}
	if m == nil || m.client == nil {
		return ErrResendMailerNotConfigured
	}

	sent, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	})
	if err != nil {
		log.Errorw("send failed", "to", msg.To, "err", err)
		return err
	}
	log.Infow("send success", "to", msg.To, "provider_email_id", sent.Id)
	return nil
}

func isEmailMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("EMAIL_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
