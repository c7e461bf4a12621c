package rabbitmq

import (
	"context"
	"fmt"
	"sync"
	"time"

	amqp "github.com/streadway/amqp"
	"go.uber.org/zap"
)

const (
	// ExchangeName is the topic exchange all domain events are published to.
	ExchangeName = "socialgrowth.events"
	// QueueName is the durable queue the in-process consumer reads from.
	QueueName = "socialgrowth_events"
)

// Handler processes one event. A non-nil error nacks the delivery.
type Handler func(routingKey string, body []byte) error

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	mu      sync.Mutex // guards channel for publishers
	logger  *zap.SugaredLogger
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL string
}

// NewClient connects to RabbitMQ, declares the events exchange and binds the events
// queue to every routing key.
func NewClient(cfg Config, logger *zap.SugaredLogger) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := declareTopology(ch); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	logger.Infow("RabbitMQ client connected", "exchange", ExchangeName, "queue", QueueName)

	return &Client{
		conn:    conn,
		channel: ch,
		logger:  logger,
	}, nil
}

func declareTopology(ch *amqp.Channel) error {
	if err := ch.ExchangeDeclare(
		ExchangeName, // name
		"topic",      // kind
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	); err != nil {
		return fmt.Errorf("failed to declare exchange %s: %w", ExchangeName, err)
	}

	if _, err := ch.QueueDeclare(
		QueueName, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	); err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", QueueName, err)
	}

	if err := ch.QueueBind(QueueName, "#", ExchangeName, false, nil); err != nil {
		return fmt.Errorf("failed to bind queue %s: %w", QueueName, err)
	}
	return nil
}

// Close closes the RabbitMQ connection and channel.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred during RabbitMQ client close: %v", errs)
	}
	return nil
}

// Publish sends a persistent JSON message to the events exchange.
func (c *Client) Publish(ctx context.Context, routingKey string, body []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	err := c.channel.Publish(
		ExchangeName, // exchange
		routingKey,   // routing key
		false,        // mandatory
		false,        // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		})
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", routingKey, err)
	}
	return nil
}

// Consume delivers events from the events queue to handler until ctx is done or the
// broker closes the delivery channel.
func (c *Client) Consume(ctx context.Context, handler Handler) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available for consumption")
	}

	c.mu.Lock()
	msgs, err := c.channel.Consume(
		QueueName, // queue
		"",        // consumer tag
		false,     // auto-ack
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	c.mu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	c.logger.Infow("waiting for events", "queue", QueueName)
	return consumeLoop(ctx, msgs, handler, c.logger)
}

func consumeLoop(ctx context.Context, msgs <-chan amqp.Delivery, handler Handler, logger *zap.SugaredLogger) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return fmt.Errorf("delivery channel closed")
			}
			dispatch(msg, handler, logger)
		}
	}
}

// dispatch acks a handled delivery. A failed first delivery is requeued once, a failed
// redelivery is dropped.
func dispatch(msg amqp.Delivery, handler Handler, logger *zap.SugaredLogger) {
	if err := handler(msg.RoutingKey, msg.Body); err != nil {
		logger.Errorw("error processing event",
			"routing_key", msg.RoutingKey,
			"delivery_tag", msg.DeliveryTag,
			"error", err,
		)
		if nackErr := msg.Nack(false, !msg.Redelivered); nackErr != nil {
			logger.Errorw("error nacking event", "delivery_tag", msg.DeliveryTag, "error", nackErr)
		}
		return
	}
	if ackErr := msg.Ack(false); ackErr != nil {
		logger.Errorw("error acking event", "delivery_tag", msg.DeliveryTag, "error", ackErr)
	}
}
