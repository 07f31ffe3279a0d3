package nats_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/narwhalmedia/catalog/internal/domain/events"
	"github.com/narwhalmedia/catalog/internal/infrastructure/events/nats"
)

type recordingStream struct {
	subject string
	payload []byte
	opts    int
	err     error
}

func (r *recordingStream) Publish(_ context.Context, subject string, payload []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.subject = subject
	r.payload = payload
	r.opts = len(opts)
	return &jetstream.PubAck{Stream: "CATALOG_EVENTS", Sequence: 1}, nil
}

func TestPublisher_Publish(t *testing.T) {
	stream := &recordingStream{}
	publisher := nats.NewPublisher(stream, zaptest.NewLogger(t))
	event := events.NewCatalogEvent(events.AggregateGenre, "abc", events.ActionUpdated)

	err := publisher.Publish(context.Background(), event)

	require.NoError(t, err)
	assert.Equal(t, "catalog.genre.updated", stream.subject)
	assert.Equal(t, 1, stream.opts)

	var decoded events.CatalogEvent
	require.NoError(t, json.Unmarshal(stream.payload, &decoded))
	assert.Equal(t, event.ID, decoded.ID)
	assert.Equal(t, "abc", decoded.AggregateID)
	assert.Equal(t, events.ActionUpdated, decoded.Action)
}

func TestPublisher_PublishError(t *testing.T) {
	stream := &recordingStream{err: errors.New("no responders")}
	publisher := nats.NewPublisher(stream, zaptest.NewLogger(t))

	err := publisher.Publish(context.Background(), events.NewCatalogEvent(events.AggregateVideo, "v", events.ActionDeleted))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog.video.deleted")
}
