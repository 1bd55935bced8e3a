package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTerminalStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		terminal bool
	}{
		{"pending is not terminal", TransactionStatusPending, false},
		{"completed is terminal", TransactionStatusCompleted, true},
		{"failed is terminal", TransactionStatusFailed, true},
		{"unknown is not terminal", "refunded", false},
		{"empty is not terminal", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.terminal, IsTerminalStatus(tt.status))
		})
	}
}

func TestTransactionAmount(t *testing.T) {
	txn := Transaction{AmountCents: 10050}
	assert.Equal(t, "100.50", txn.Amount().String())
}
