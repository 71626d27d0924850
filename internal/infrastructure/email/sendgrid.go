package email

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"log"
	"net/http"

	"github.com/foodpulse/backend/internal/domain"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const sendgridHost = "https://api.sendgrid.com"

// SendGridSender delivers contact notifications and newsletter signups
// through SendGrid.
type SendGridSender struct {
	apiKey     string
	fromEmail  string
	inboxEmail string
}

// NewSendGridSender creates a sender. An empty apiKey is allowed so the
// server can boot without email configured; sends then fail with
// ErrEmailNotConfigured.
func NewSendGridSender(apiKey, fromEmail, inboxEmail string) *SendGridSender {
	return &SendGridSender{
		apiKey:     apiKey,
		fromEmail:  fromEmail,
		inboxEmail: inboxEmail,
	}
}

// Configured reports whether an API key is present
func (s *SendGridSender) Configured() bool {
	return s.apiKey != ""
}

// SendContactNotification formats a contact submission and emails it to the
// site inbox.
func (s *SendGridSender) SendContactNotification(ctx context.Context, req *domain.ContactRequest) error {
	if !s.Configured() {
		return domain.ErrEmailNotConfigured
	}

	from := mail.NewEmail("FoodPulse", s.fromEmail)
	to := mail.NewEmail("FoodPulse Inbox", s.inboxEmail)
	subject := fmt.Sprintf("[Contact] %s", req.Subject)

	text := fmt.Sprintf("From: %s <%s>\nSubject: %s\n\n%s", req.Name, req.Email, req.Subject, req.Message)
	htmlBody := fmt.Sprintf(
		"<p><strong>From:</strong> %s &lt;%s&gt;</p><p><strong>Subject:</strong> %s</p><p>%s</p>",
		html.EscapeString(req.Name),
		html.EscapeString(req.Email),
		html.EscapeString(req.Subject),
		html.EscapeString(req.Message),
	)

	message := mail.NewSingleEmail(from, subject, to, text, htmlBody)
	message.ReplyTo = mail.NewEmail(req.Name, req.Email)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		log.Printf("[EMAIL] contact notification send error: %v", err)
		return fmt.Errorf("%w: %v", domain.ErrEmailFailure, err)
	}
	if response.StatusCode >= 400 {
		log.Printf("[EMAIL] sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
		return fmt.Errorf("%w: status %d", domain.ErrEmailFailure, response.StatusCode)
	}

	return nil
}

// Subscribe upserts a marketing contact for the newsletter list
func (s *SendGridSender) Subscribe(ctx context.Context, email string) error {
	if !s.Configured() {
		return domain.ErrEmailNotConfigured
	}

	body, err := json.Marshal(map[string]interface{}{
		"contacts": []map[string]string{{"email": email}},
	})
	if err != nil {
		return err
	}

	request := sendgrid.GetRequest(s.apiKey, "/v3/marketing/contacts", sendgridHost)
	request.Method = http.MethodPut
	request.Body = body

	response, err := sendgrid.MakeRequestWithContext(ctx, request)
	if err != nil {
		log.Printf("[EMAIL] newsletter subscribe error: %v", err)
		return fmt.Errorf("%w: %v", domain.ErrEmailFailure, err)
	}
	if response.StatusCode >= 400 {
		log.Printf("[EMAIL] sendgrid contacts error: status %d, body: %s", response.StatusCode, response.Body)
		return fmt.Errorf("%w: status %d", domain.ErrEmailFailure, response.StatusCode)
	}

	return nil
}
