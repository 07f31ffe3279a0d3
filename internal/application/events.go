package application

import (
	"context"

	"github.com/narwhalmedia/catalog/internal/domain/events"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

// Notify publishes a catalog event after a committed write. The write has
// already happened, so a publish failure is logged and not returned.
func Notify(ctx context.Context, publisher events.Publisher, logger interfaces.Logger, aggregateType, aggregateID string, action events.Action) {
	if publisher == nil {
		return
	}

	event := events.NewCatalogEvent(aggregateType, aggregateID, action)
	if err := publisher.Publish(ctx, event); err != nil {
		logger.Error("failed to publish catalog event",
			interfaces.String("event_id", event.ID),
			interfaces.String("subject", event.Subject()),
			interfaces.Error(err),
		)
	}
}
