package kafka_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narwhalmedia/catalog/internal/domain/events"
	"github.com/narwhalmedia/catalog/internal/infrastructure/events/kafka"
)

func TestPublisher_Publish(t *testing.T) {
	producer := mocks.NewSyncProducer(t, kafka.NewProducerConfig("test"))
	event := events.NewCatalogEvent(events.AggregateCategory, "c1", events.ActionCreated)

	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		key, err := msg.Key.Encode()
		if err != nil {
			return err
		}
		if string(key) != "c1" {
			return errors.New("message not keyed by aggregate id")
		}
		value, err := msg.Value.Encode()
		if err != nil {
			return err
		}
		var decoded events.CatalogEvent
		if err := json.Unmarshal(value, &decoded); err != nil {
			return err
		}
		if decoded.ID != event.ID {
			return errors.New("unexpected event id")
		}
		return nil
	})

	publisher := kafka.NewPublisherWithProducer(producer, "catalog.events")
	require.NoError(t, publisher.Publish(context.Background(), event))
	require.NoError(t, publisher.Close())
}

func TestPublisher_SendFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, kafka.NewProducerConfig("test"))
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	publisher := kafka.NewPublisherWithProducer(producer, "catalog.events")
	err := publisher.Publish(context.Background(), events.NewCatalogEvent(events.AggregateVideo, "v1", events.ActionDeleted))

	require.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	assert.NoError(t, publisher.Close())
}

func TestPublisher_CancelledContext(t *testing.T) {
	producer := mocks.NewSyncProducer(t, kafka.NewProducerConfig("test"))
	publisher := kafka.NewPublisherWithProducer(producer, "catalog.events")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, publisher.Publish(ctx, events.NewCatalogEvent(events.AggregateGenre, "g", events.ActionCreated)), context.Canceled)
	assert.NoError(t, publisher.Close())
}
