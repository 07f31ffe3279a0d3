package events

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Action is what happened to an aggregate.
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// Aggregate types carried by catalog events.
const (
	AggregateCategory   = "category"
	AggregateGenre      = "genre"
	AggregateCastMember = "cast_member"
	AggregateVideo      = "video"
)

// CatalogEvent announces a committed change to one aggregate.
type CatalogEvent struct {
	ID            string    `json:"id"`
	AggregateType string    `json:"aggregate_type"`
	AggregateID   string    `json:"aggregate_id"`
	Action        Action    `json:"action"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// NewCatalogEvent creates an event stamped with a fresh id and the current time.
func NewCatalogEvent(aggregateType, aggregateID string, action Action) CatalogEvent {
	return CatalogEvent{
		ID:            uuid.NewString(),
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		Action:        action,
		OccurredAt:    time.Now().UTC(),
	}
}

// Subject returns the routing key, e.g. "catalog.genre.updated".
func (e CatalogEvent) Subject() string {
	return fmt.Sprintf("catalog.%s.%s", e.AggregateType, e.Action)
}

// Publisher delivers catalog events to a broker.
type Publisher interface {
	Publish(ctx context.Context, event CatalogEvent) error
}

// NoopPublisher discards every event.
type NoopPublisher struct{}

// Publish does nothing.
func (NoopPublisher) Publish(context.Context, CatalogEvent) error {
	return nil
}
