package models

// MaxNotificationAttempts is the delivery attempt ceiling. A job
// observed on the queue with more attempts than this is discarded.
const MaxNotificationAttempts = 5

// NotificationJob is the queue wire format for a pending notification.
// Attempts starts at 1 on first enqueue and grows by one per requeue.
type NotificationJob struct {
	UserID   uint   `json:"user_id"`
	Message  string `json:"message"`
	Attempts int    `json:"attempts"`
}
