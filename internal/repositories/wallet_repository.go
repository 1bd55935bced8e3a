package repositories

import (
	"payflow/internal/models"

	"gorm.io/gorm"
)

// WalletRepository is the ledger store. It owns wallet balances and
// exposes the locked paired debit/credit used by transfers.
type WalletRepository interface {
	Create(wallet *models.Wallet) error
	GetByUserID(userID uint) (*models.Wallet, error)
	Update(wallet *models.Wallet) error

	// MoveBalance debits payer and credits payee inside the caller's
	// transaction handle, holding exclusive row locks on both wallets.
	// It returns false on a recoverable business failure (missing
	// wallet, insufficient balance under lock) and reserves the error
	// return for infrastructure faults.
	MoveBalance(tx *gorm.DB, payerID, payeeID uint, amount models.Money) (bool, error)
}
