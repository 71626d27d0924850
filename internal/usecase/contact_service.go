package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/foodpulse/backend/internal/domain"
	"github.com/foodpulse/backend/internal/metrics"
)

// emailRegex is the permissive shape check used at the form boundary;
// deliverability is the email provider's problem.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Minimum lengths for contact form fields
const (
	minNameLen    = 2
	minSubjectLen = 3
	minMessageLen = 10
)

// FieldErrors maps field names to validation messages
type FieldErrors map[string]string

// ContactService validates contact submissions and dispatches the
// notification email.
type ContactService struct {
	sender domain.EmailSender
}

// NewContactService creates a contact service
func NewContactService(sender domain.EmailSender) *ContactService {
	return &ContactService{sender: sender}
}

// ValidateContact checks a submission against the form's minimum-length
// rules. Returns nil when the submission is valid.
func ValidateContact(req *domain.ContactRequest) FieldErrors {
	errs := FieldErrors{}

	if len(strings.TrimSpace(req.Name)) < minNameLen {
		errs["name"] = fmt.Sprintf("name must be at least %d characters", minNameLen)
	}
	if !emailRegex.MatchString(strings.TrimSpace(req.Email)) {
		errs["email"] = "a valid email address is required"
	}
	if len(strings.TrimSpace(req.Subject)) < minSubjectLen {
		errs["subject"] = fmt.Sprintf("subject must be at least %d characters", minSubjectLen)
	}
	if len(strings.TrimSpace(req.Message)) < minMessageLen {
		errs["message"] = fmt.Sprintf("message must be at least %d characters", minMessageLen)
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Submit validates and sends a contact submission. Validation failures are
// returned as FieldErrors with a nil error; a non-nil error means the send
// itself failed.
func (s *ContactService) Submit(ctx context.Context, req *domain.ContactRequest) (FieldErrors, error) {
	if req == nil {
		return nil, domain.ErrInvalidInput
	}

	if errs := ValidateContact(req); errs != nil {
		metrics.IncContactSubmission("invalid")
		return errs, nil
	}

	trimmed := &domain.ContactRequest{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
	}

	if err := s.sender.SendContactNotification(ctx, trimmed); err != nil {
		metrics.IncContactSubmission("error")
		return nil, err
	}

	metrics.IncContactSubmission("sent")
	return nil, nil
}
