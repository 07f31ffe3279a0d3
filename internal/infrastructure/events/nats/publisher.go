package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/narwhalmedia/catalog/internal/domain/events"
)

const publishTimeout = 5 * time.Second

// StreamPublisher is the part of jetstream.JetStream the publisher needs.
type StreamPublisher interface {
	Publish(ctx context.Context, subject string, payload []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error)
}

// Publisher implements events.Publisher using NATS JetStream
type Publisher struct {
	js     StreamPublisher
	logger *zap.Logger
}

var _ events.Publisher = (*Publisher)(nil)

// NewPublisher creates a new NATS event publisher
func NewPublisher(js StreamPublisher, logger *zap.Logger) *Publisher {
	return &Publisher{
		js:     js,
		logger: logger.Named("publisher"),
	}
}

// Publish sends the event to its subject, deduplicated by event id
func (p *Publisher) Publish(ctx context.Context, event events.CatalogEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	subject := event.Subject()
	ack, err := p.js.Publish(pubCtx, subject, data, jetstream.WithMsgID(event.ID))
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", subject, err)
	}

	p.logger.Debug("event published",
		zap.String("event_id", event.ID),
		zap.String("subject", subject),
		zap.Uint64("sequence", ack.Sequence),
		zap.String("stream", ack.Stream),
	)
	return nil
}
