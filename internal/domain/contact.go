package domain

// ContactRequest is a contact form submission
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// NewsletterRequest is a newsletter signup
type NewsletterRequest struct {
	Email string `json:"email"`
}
