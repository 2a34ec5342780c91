package services

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Routing keys of inventory change events.
const (
	EventProductTypeCreated = "product_type.created"
	EventProductTypeUpdated = "product_type.updated"
	EventProductTypeDeleted = "product_type.deleted"
	EventProductCreated     = "product.created"
	EventProductUpdated     = "product.updated"
	EventProductTypeChanged = "product.type_changed"
	EventProductDeleted     = "product.deleted"
)

// EventPublisher delivers inventory change events to a broker.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload interface{}) error
}

// notifier publishes events best-effort: failures are logged and never fail
// the request that caused them.
type notifier struct {
	events EventPublisher
	log    logrus.FieldLogger
}

func (n notifier) notify(ctx context.Context, routingKey string, payload interface{}) {
	if n.events == nil {
		return
	}
	if err := n.events.Publish(ctx, routingKey, payload); err != nil {
		n.log.WithError(err).WithField("event", routingKey).Warn("Failed to publish inventory event")
	}
}
