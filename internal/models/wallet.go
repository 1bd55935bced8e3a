package models

import (
	"time"
)

// Wallet holds a user's balance in minor currency units. The balance
// column is an integer so arithmetic in SQL and in Go share the exact
// representation Money uses.
type Wallet struct {
	ID           uint  `gorm:"primarykey"`
	UserID       uint  `gorm:"uniqueIndex;not null"`
	BalanceCents int64 `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Balance returns the wallet balance as a Money value.
func (w *Wallet) Balance() Money {
	return NewMoneyFromCents(w.BalanceCents)
}

// SetBalance stores a Money value back into the balance column.
func (w *Wallet) SetBalance(m Money) {
	w.BalanceCents = m.Cents()
}

// HasSufficientBalance reports whether the wallet can cover amount.
func (w *Wallet) HasSufficientBalance(amount Money) bool {
	return w.Balance().GreaterThanOrEqual(amount)
}
