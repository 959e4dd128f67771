package usecase

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"studio_pricing/internal/infrastructure/logging"
	"studio_pricing/internal/usecase/interfaces"
)

var (
	ErrInvalidContactInput = errors.New("invalid contact input")
	ErrMailerNotConfigured = errors.New("mailer not configured")
	ErrNotificationNotSent = errors.New("notification email not sent")
)

// ContactMessage is the contact-form payload.
type ContactMessage struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactResult is the structured send outcome. Success means "the operator
// notification was sent"; the confirmation to the sender is best effort and
// never surfaces to the caller.
type ContactResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type IContactUseCase interface {
	Send(ctx context.Context, msg ContactMessage) (ContactResult, error)
}

type ContactUseCase struct {
	mailer        interfaces.IMailer
	operatorEmail string
}

var _ IContactUseCase = (*ContactUseCase)(nil)

func NewContactUseCase(mailer interfaces.IMailer, operatorEmail string) *ContactUseCase {
	return &ContactUseCase{mailer: mailer, operatorEmail: operatorEmail}
}

func (u *ContactUseCase) Send(ctx context.Context, msg ContactMessage) (ContactResult, error) {
	log := logging.L("contact.usecase")

	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Subject = strings.TrimSpace(msg.Subject)
	msg.Message = strings.TrimSpace(msg.Message)
	if msg.Email == "" || !strings.Contains(msg.Email, "@") || msg.Message == "" {
		return ContactResult{}, ErrInvalidContactInput
	}
	// A misconfigured provider is an external-dependency failure like an
	// unreachable one: a structured result, not an error.
	if u.mailer == nil || u.operatorEmail == "" {
		log.Errorw("contact mailer not configured")
		return ContactResult{Success: false, Error: ErrMailerNotConfigured.Error()}, nil
	}

	subject := msg.Subject
	if subject == "" {
		subject = "New contact form message"
	}

	notification := interfaces.Email{
		To:      u.operatorEmail,
		Subject: fmt.Sprintf("[contact] %s", subject),
		HTML: fmt.Sprintf("<p>From: %s &lt;%s&gt;</p><p>%s</p>",
			html.EscapeString(msg.Name), html.EscapeString(msg.Email), html.EscapeString(msg.Message)),
	}
	if err := u.mailer.Send(ctx, notification); err != nil {
		log.Errorw("contact notification send failed", "err", err)
		return ContactResult{Success: false, Error: ErrNotificationNotSent.Error()}, nil
	}

	// Secondary confirmation: logged only, never affects the result.
	confirmation := interfaces.Email{
		To:      msg.Email,
		Subject: "Thanks for getting in touch",
		HTML:    fmt.Sprintf("<p>Hi %s,</p><p>Your message was received; expect a reply within one business day.</p>", html.EscapeString(msg.Name)),
	}
	if err := u.mailer.Send(ctx, confirmation); err != nil {
		log.Warnw("contact confirmation send failed", "to", msg.Email, "err", err)
	}

	return ContactResult{Success: true}, nil
}
