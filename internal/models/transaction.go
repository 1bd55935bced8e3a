package models

import (
	"time"
)

// Transaction statuses. A transaction starts pending and moves exactly
// once to completed or failed; terminal states never transition again.
const (
	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusFailed    = "failed"
)

// Transaction is the append-only record of a transfer attempt.
type Transaction struct {
	ID          uint   `gorm:"primarykey"`
	Reference   string `gorm:"uniqueIndex;not null"`
	PayerID     uint   `gorm:"not null;index"`
	PayeeID     uint   `gorm:"not null;index"`
	AmountCents int64  `gorm:"not null"`
	Status      string `gorm:"not null;default:'pending'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Amount returns the transaction amount as a Money value.
func (t *Transaction) Amount() Money {
	return NewMoneyFromCents(t.AmountCents)
}

// IsTerminalStatus reports whether the status admits no further
// transition.
func IsTerminalStatus(status string) bool {
	return status == TransactionStatusCompleted || status == TransactionStatusFailed
}
