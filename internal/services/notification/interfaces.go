package notification

import (
	"context"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Channel is the slice of the queue the notification service uses:
// persist a job, fetch at most one pending message.
type Channel interface {
	Publish(ctx context.Context, body interface{}) error
	Get() (amqp.Delivery, bool, error)
}

// Sender performs one external delivery attempt. It reports success or
// failure; it never retries on its own.
type Sender interface {
	Send(ctx context.Context, userID uint, message string) bool
}

// Service delivers notifications with at-least-once semantics up to a
// bounded attempt count.
type Service interface {
	// Notify attempts immediate delivery and enqueues the job for
	// retry when the attempt fails.
	Notify(ctx context.Context, userID uint, message string) error

	// ProcessOne handles at most one currently-available queued job
	// and returns the number of messages processed (0 or 1).
	ProcessOne(ctx context.Context) (int, error)

	// RetryFailed drains single messages until the queue is empty or
	// the wall-clock timeout elapses, returning the processed count.
	RetryFailed(ctx context.Context, timeout time.Duration) (int, error)
}
