package services

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
)

// Routing keys of the domain events.
const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
	EventFundsDeposited     = "funds.deposited"
)

// EventPublisher sends domain events to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
}

// publishEvent is best effort: a broker failure never fails the operation that caused it.
func publishEvent(ctx context.Context, pub EventPublisher, logger *zap.SugaredLogger, routingKey string, payload any) {
	if pub == nil {
		logger.Debugw("event publisher not configured, skipping", "event", routingKey)
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		logger.Errorw("failed to marshal event", "event", routingKey, "error", err)
		return
	}
	if err := pub.Publish(ctx, routingKey, body); err != nil {
		logger.Warnw("failed to publish event", "event", routingKey, "error", err)
		return
	}
	logger.Debugw("event published", "event", routingKey)
}
