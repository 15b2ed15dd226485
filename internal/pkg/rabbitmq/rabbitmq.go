// Package rabbitmq wraps the AMQP connection used to fan order events out to
// downstream consumers (fulfillment, notifications).
package rabbitmq

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// RabbitMQ holds an open connection and channel to the broker.
type RabbitMQ struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	queue    string
}

// New dials the broker and opens a channel.
func New(url, exchange, queue string) (*RabbitMQ, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to dial broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	return &RabbitMQ{
		conn:     conn,
		channel:  ch,
		exchange: exchange,
		queue:    queue,
	}, nil
}

// SetupTopology declares the order exchange and queue and binds them. Event
// types double as routing keys, so consumers can bind narrower patterns.
func (r *RabbitMQ) SetupTopology() error {
	if err := r.channel.ExchangeDeclare(
		r.exchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	if _, err := r.channel.QueueDeclare(
		r.queue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	); err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	if err := r.channel.QueueBind(
		r.queue,
		"order.#",
		r.exchange,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("failed to bind queue: %w", err)
	}

	return nil
}

// Publish delivers a serialized event to the order exchange, keyed by its
// event type. Implements the order context's EventPublisher.
func (r *RabbitMQ) Publish(ctx context.Context, eventType string, payload []byte) error {
	return r.channel.PublishWithContext(
		ctx,
		r.exchange,
		eventType,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			ContentType:  "application/json",
			Body:         payload,
		},
	)
}

// Close shuts down the channel and connection.
func (r *RabbitMQ) Close() {
	if r.channel != nil {
		_ = r.channel.Close()
	}
	if r.conn != nil {
		_ = r.conn.Close()
	}
}
