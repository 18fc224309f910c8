package contact

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name    string `json:"name" validate:"min=2"`
	Email   string `json:"email" validate:"email"`
	Subject string `json:"subject" validate:"min=5"`
	Message string `json:"message" validate:"min=20"`
}
