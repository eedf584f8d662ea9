package events

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go"
)

type natsConn interface {
	Publish(subject string, data []byte) error
	Close()
}

// NATSPublisher publishes lead events on a NATS subject.
type NATSPublisher struct {
	conn natsConn
}

// NewNATSPublisher connects to the NATS server at url.
func NewNATSPublisher(url string) (*NATSPublisher, error) {
	conn, err := nats.Connect(url, nats.Name("rental-planner"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return &NATSPublisher{conn: conn}, nil
}

// PublishLead sends event as JSON on SubjectAdviceRequested.
func (p *NATSPublisher) PublishLead(ctx context.Context, event LeadEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := encode(event)
	if err != nil {
		return err
	}
	if err := p.conn.Publish(SubjectAdviceRequested, body); err != nil {
		return fmt.Errorf("failed to publish lead event: %w", err)
	}
	return nil
}

func (p *NATSPublisher) Close() error {
	p.conn.Close()
	return nil
}
