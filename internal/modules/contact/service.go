package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"makeupstudio/internal/domain"
	"makeupstudio/internal/notification"
)

// Service accepts public contact submissions. When a relay URL is configured
// the submission is forwarded there instead of being stored locally; either
// way the artist's inbox gets a best-effort notification.
type Service struct {
	submissions ContactRepository
	notifier    notification.Notifier
	relayURL    string
	client      *http.Client
}

func NewService(submissions ContactRepository, notifier notification.Notifier, relayURL string) *Service {
	return &Service{
		submissions: submissions,
		notifier:    notifier,
		relayURL:    relayURL,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *Service) Submit(ctx context.Context, req SubmitRequest) error {
	sub := &domain.ContactSubmission{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: time.Now(),
	}

	if s.relayURL != "" {
		if err := s.relay(ctx, sub); err != nil {
			return err
		}
	} else if err := s.submissions.Create(ctx, sub); err != nil {
		return err
	}

	if s.notifier != nil {
		s.notifier.ContactReceived(sub)
	}
	return nil
}

func (s *Service) relay(ctx context.Context, sub *domain.ContactSubmission) error {
	payload, err := json.Marshal(map[string]string{
		"name":    sub.Name,
		"email":   sub.Email,
		"phone":   sub.Phone,
		"subject": sub.Subject,
		"message": sub.Message,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.relayURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("relay submission: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("relay submission: unexpected status %d", resp.StatusCode)
	}
	return nil
}
