package transfer

import (
	"context"
	"database/sql"

	"payflow/internal/models"

	"gorm.io/gorm"
)

// DB is the transactional handle the engine runs its unit of work on.
// *gorm.DB satisfies it.
type DB interface {
	Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error
}

// Notifier is used to notify the payee after a committed transfer.
type Notifier interface {
	Notify(ctx context.Context, userID uint, message string) error
}

// Service moves money between two user wallets.
type Service interface {
	Transfer(ctx context.Context, payerID, payeeID uint, amount models.Money) (*models.Transaction, error)
}
