// Package notification implements the at-least-once delivery pipeline
// for payee notifications. Failed sends become durable queue entries
// that are retried until they succeed or exceed the attempt ceiling.
package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"payflow/internal/models"

	"go.uber.org/zap"
)

type service struct {
	channel Channel
	sender  Sender
	logger  *zap.SugaredLogger
}

// NewService creates a notification service over the given queue
// channel and delivery transport.
func NewService(channel Channel, sender Sender, logger *zap.SugaredLogger) Service {
	if channel == nil {
		panic("channel is required")
	}
	if sender == nil {
		panic("sender is required")
	}

	return &service{
		channel: channel,
		sender:  sender,
		logger:  logger,
	}
}

func (s *service) Notify(ctx context.Context, userID uint, message string) error {
	if s.sender.Send(ctx, userID, message) {
		return nil
	}

	job := models.NotificationJob{
		UserID:   userID,
		Message:  message,
		Attempts: 1,
	}
	if err := s.channel.Publish(ctx, job); err != nil {
		return fmt.Errorf("failed to enqueue notification: %w", err)
	}

	s.logger.Infow("notification added to queue",
		"user_id", userID, "attempts", job.Attempts)
	return nil
}

func (s *service) ProcessOne(ctx context.Context) (int, error) {
	msg, ok, err := s.channel.Get()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}

	var job models.NotificationJob
	if err := json.Unmarshal(msg.Body, &job); err != nil {
		// Malformed payloads can never succeed on redelivery.
		s.logger.Warnw("discarding malformed notification", "error", err)
		return 1, msg.Nack(false, false)
	}

	if job.Attempts > models.MaxNotificationAttempts {
		s.logger.Warnw("notification discarded after attempt ceiling",
			"user_id", job.UserID, "attempts", job.Attempts)
		return 1, msg.Nack(false, false)
	}

	if s.sender.Send(ctx, job.UserID, job.Message) {
		s.logger.Infow("notification delivered",
			"user_id", job.UserID, "attempts", job.Attempts)
		return 1, msg.Ack(false)
	}

	// The failure is converted into a fresh queue entry before the
	// original is acked, so the job is never lost mid-retry.
	retry := models.NotificationJob{
		UserID:   job.UserID,
		Message:  job.Message,
		Attempts: job.Attempts + 1,
	}
	if err := s.channel.Publish(ctx, retry); err != nil {
		// Leave the original unacked; the broker redelivers it.
		return 1, fmt.Errorf("failed to requeue notification: %w", err)
	}

	s.logger.Infow("notification failed, re-queued",
		"user_id", retry.UserID, "attempts", retry.Attempts)
	return 1, msg.Ack(false)
}

func (s *service) RetryFailed(ctx context.Context, timeout time.Duration) (int, error) {
	deadline := time.Now().Add(timeout)
	processed := 0

	for time.Now().Before(deadline) {
		if err := ctx.Err(); err != nil {
			return processed, err
		}

		n, err := s.ProcessOne(ctx)
		if err != nil {
			return processed, err
		}
		if n == 0 {
			break
		}
		processed += n
	}

	return processed, nil
}

// httpSender delivers notifications through an external HTTP endpoint.
// A 204 response means the transport accepted the message.
type httpSender struct {
	url    string
	client *http.Client
	logger *zap.SugaredLogger
}

// NewHTTPSender creates the production delivery transport.
func NewHTTPSender(url string, logger *zap.SugaredLogger) Sender {
	return &httpSender{
		url: url,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

func (h *httpSender) Send(ctx context.Context, userID uint, message string) bool {
	payload, err := json.Marshal(map[string]interface{}{
		"user_id": userID,
		"message": message,
	})
	if err != nil {
		h.logger.Errorw("failed to marshal notification payload", "error", err)
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.url, bytes.NewReader(payload))
	if err != nil {
		h.logger.Errorw("failed to build notification request", "error", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		h.logger.Warnw("notification send failed", "user_id", userID, "error", err)
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusNoContent
}
