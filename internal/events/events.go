// Package events publishes lead notifications to a message broker so sales
// can follow up on planning requests.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"rental-planner/internal/config"
)

// SubjectAdviceRequested is the queue or subject for advice requests.
const SubjectAdviceRequested = "lead.advice_requested"

// LeadEvent describes one advice request made by a prospective customer.
type LeadEvent struct {
	Description string    `json:"description"`
	GuestCount  int       `json:"guest_count"`
	Location    string    `json:"location"`
	TableStyle  string    `json:"table_style,omitempty"`
	Source      string    `json:"source"`
	Success     bool      `json:"success"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// Publisher delivers lead events.
type Publisher interface {
	PublishLead(ctx context.Context, event LeadEvent) error
	Close() error
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) PublishLead(context.Context, LeadEvent) error { return nil }
func (NopPublisher) Close() error                                 { return nil }

// New returns the publisher selected by cfg.EventsBackend.
func New(cfg *config.Config) (Publisher, error) {
	switch cfg.EventsBackend {
	case "", config.EventsNone:
		return NopPublisher{}, nil
	case config.EventsAMQP:
		return NewAMQPPublisher(cfg.AMQPURL)
	case config.EventsNATS:
		return NewNATSPublisher(cfg.NATSURL)
	default:
		return nil, fmt.Errorf("unsupported events backend %q", cfg.EventsBackend)
	}
}

func encode(event LeadEvent) ([]byte, error) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	body, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal lead event: %w", err)
	}
	return body, nil
}
