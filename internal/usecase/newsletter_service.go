package usecase

import (
	"context"
	"strings"

	"github.com/foodpulse/backend/internal/domain"
	"github.com/foodpulse/backend/internal/metrics"
)

// NewsletterService handles newsletter signups
type NewsletterService struct {
	sender domain.EmailSender
}

// NewNewsletterService creates a newsletter service
func NewNewsletterService(sender domain.EmailSender) *NewsletterService {
	return &NewsletterService{sender: sender}
}

// Subscribe validates the email and upserts it as a marketing contact
func (s *NewsletterService) Subscribe(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if !emailRegex.MatchString(email) {
		metrics.IncNewsletterSignup("invalid")
		return domain.ErrInvalidInput
	}

	if err := s.sender.Subscribe(ctx, email); err != nil {
		metrics.IncNewsletterSignup("error")
		return err
	}

	metrics.IncNewsletterSignup("subscribed")
	return nil
}
