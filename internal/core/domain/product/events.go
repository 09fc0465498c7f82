package product

import (
	"context"
	"inventory/internal/core/domain/logging"
)

type EventType string

const (
	EventCreated EventType = "created"
	EventUpdated EventType = "updated"
	EventDeleted EventType = "deleted"
	EventSold    EventType = "sold"
)

type Event struct {
	Type    EventType
	Product Product
}

type EventPublisher interface {
	PublishEvent(ctx context.Context, event Event) error
}

// Publish sends the event, a failure is logged and not returned.
func Publish(ctx context.Context, publisher EventPublisher, log logging.Logger, event Event) {
	if err := publisher.PublishEvent(ctx, event); err != nil {
		log.Warning(
			ctx,
			"Could not publish product event.",
			logging.Entry("type", event.Type),
			logging.Entry("productID", event.Product.ID),
			logging.Entry("err", err),
		)
	}
}
