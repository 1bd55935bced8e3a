// Package queue wraps the RabbitMQ channel used for notification
// delivery. The queue is durable and consumed with prefetch 1, so at
// most one message is in flight at a time.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// NotificationQueueName is the single named durable queue holding
// pending notification jobs.
const NotificationQueueName = "notification_queue"

// Queue is a hub for the rabbitmq connection and channel.
type Queue struct {
	mu      sync.Mutex
	url     string
	name    string
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *zap.SugaredLogger
}

// New creates a Queue for the given broker URL. Connect must be called
// before publishing or consuming.
func New(url string, logger *zap.SugaredLogger) *Queue {
	return &Queue{
		url:    url,
		name:   NotificationQueueName,
		logger: logger,
	}
}

// Connect dials the broker, opens a channel, declares the durable
// queue and sets prefetch to a single in-flight message.
func (q *Queue) Connect() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.connectLocked()
}

func (q *Queue) connectLocked() error {
	conn, err := amqp.Dial(q.url)
	if err != nil {
		return fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to open channel on rabbitmq: %w", err)
	}

	if _, err := ch.QueueDeclare(
		q.name,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		ch.Close()
		conn.Close()
		return fmt.Errorf("failed to declare queue %s: %w", q.name, err)
	}

	// Prefetch 1: the broker holds back further deliveries until the
	// in-flight message is acked.
	if err := ch.Qos(1, 0, false); err != nil {
		ch.Close()
		conn.Close()
		return fmt.Errorf("failed to set qos on rabbitmq channel: %w", err)
	}

	q.conn = conn
	q.channel = ch
	q.logger.Infow("connected to rabbitmq", "queue", q.name)

	return nil
}

// ensureChannel reopens the connection if the channel was closed, e.g.
// after a broker restart.
func (q *Queue) ensureChannel() (*amqp.Channel, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.channel == nil || q.channel.IsClosed() {
		q.logger.Warnw("rabbitmq channel closed, reconnecting", "queue", q.name)
		if err := q.connectLocked(); err != nil {
			return nil, err
		}
	}
	return q.channel, nil
}

// Publish persists a message onto the queue. Delivery mode is
// persistent so jobs survive broker restarts.
func (q *Queue) Publish(ctx context.Context, body interface{}) error {
	ch, err := q.ensureChannel()
	if err != nil {
		return err
	}

	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal queue message: %w", err)
	}

	err = ch.PublishWithContext(ctx,
		"",     // default exchange
		q.name, // routing key is the queue name
		false,  // mandatory
		false,  // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         data,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish to queue %s: %w", q.name, err)
	}
	return nil
}

// Get fetches at most one currently-available message without
// blocking. ok is false when the queue is empty.
func (q *Queue) Get() (amqp.Delivery, bool, error) {
	ch, err := q.ensureChannel()
	if err != nil {
		return amqp.Delivery{}, false, err
	}

	msg, ok, err := ch.Get(q.name, false)
	if err != nil {
		return amqp.Delivery{}, false, fmt.Errorf("failed to get message from queue %s: %w", q.name, err)
	}
	return msg, ok, nil
}

// Close shuts down the channel and connection.
func (q *Queue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.channel != nil && !q.channel.IsClosed() {
		if err := q.channel.Close(); err != nil {
			return err
		}
	}
	if q.conn != nil && !q.conn.IsClosed() {
		return q.conn.Close()
	}
	return nil
}
