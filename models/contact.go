package models

// ContactRequest is the contact form payload forwarded to the mail relay.
type ContactRequest struct {
	Name             string `json:"name" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	Phone            string `json:"phone,omitempty"`
	ConsultationType string `json:"consultationType,omitempty"`
	Message          string `json:"message" validate:"required"`
}

type ContactResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	MessageID string `json:"messageId,omitempty"`
}
