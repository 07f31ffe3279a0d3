package messaging

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/narwhalmedia/catalog/internal/config"
	"github.com/narwhalmedia/catalog/internal/domain/events"
	"github.com/narwhalmedia/catalog/internal/infrastructure/events/kafka"
	"github.com/narwhalmedia/catalog/internal/infrastructure/events/nats"
)

// NewPublisher builds the catalog event publisher selected by cfg.Driver.
// The returned cleanup releases broker connections.
func NewPublisher(cfg config.EventsConfig, logger *zap.Logger) (events.Publisher, func(), error) {
	switch cfg.Driver {
	case "", "none":
		logger.Info("catalog events disabled")
		return events.NoopPublisher{}, func() {}, nil

	case "nats":
		client, cleanup, err := nats.NewClient(cfg.NATS, logger)
		if err != nil {
			return nil, nil, err
		}
		return nats.NewPublisher(client.JetStream(), logger), cleanup, nil

	case "kafka":
		publisher, err := kafka.NewPublisher(cfg.Kafka)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			if err := publisher.Close(); err != nil {
				logger.Warn("closing kafka producer", zap.Error(err))
			}
		}
		logger.Info("kafka publisher initialized",
			zap.Strings("brokers", cfg.Kafka.Brokers),
			zap.String("topic", cfg.Kafka.Topic),
		)
		return publisher, cleanup, nil

	default:
		return nil, nil, fmt.Errorf("unsupported events driver %q", cfg.Driver)
	}
}
