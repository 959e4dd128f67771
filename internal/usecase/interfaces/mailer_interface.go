package interfaces

import "context"

// Email is one outbound transactional message.
type Email struct {
	To      string
	Subject string
	HTML    string
}

// IMailer abstracts the transactional email provider (e.g. Resend).
//
// Sends are best-effort from the core's perspective: a failed notification is
// reported as an error result, never thrown through business state.
type IMailer interface {
	Send(ctx context.Context, msg Email) error
}
