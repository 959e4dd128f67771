package request

import "studio_pricing/internal/usecase"

// ContactRequest is the public contact-form payload.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email" binding:"required"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

func (r ContactRequest) ToMessage() usecase.ContactMessage {
	return usecase.ContactMessage{
		Name:    r.Name,
		Email:   r.Email,
		Subject: r.Subject,
		Message: r.Message,
	}
}
