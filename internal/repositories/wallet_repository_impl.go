package repositories

import (
	"fmt"
	"log"

	"payflow/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type walletRepository struct {
	db *gorm.DB
}

func NewWalletRepository(db *gorm.DB) WalletRepository {
	return &walletRepository{
		db: db,
	}
}

func (r *walletRepository) Create(wallet *models.Wallet) error {
	result := r.db.Create(wallet)
	if result.Error != nil {
		return fmt.Errorf("failed to create wallet: %w", result.Error)
	}
	return nil
}

func (r *walletRepository) GetByUserID(userID uint) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := r.db.Where("user_id = ?", userID).First(&wallet).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return &wallet, nil
}

func (r *walletRepository) Update(wallet *models.Wallet) error {
	result := r.db.Save(wallet)
	if result.Error != nil {
		return fmt.Errorf("failed to update wallet: %w", result.Error)
	}
	return nil
}

// MoveBalance locks both wallet rows FOR UPDATE in ascending user id
// order. Locking in a fixed order prevents deadlocks between
// concurrent opposite-direction transfers over the same wallet pair.
// The payer's sufficiency is re-checked under lock; the earlier check
// in the transfer engine is advisory only. A false return means the
// payer's balance cannot cover the amount; a missing wallet row is an
// error, since callers verify both wallets exist before starting.
func (r *walletRepository) MoveBalance(tx *gorm.DB, payerID, payeeID uint, amount models.Money) (bool, error) {
	lockOrder := []uint{payerID, payeeID}
	if payeeID < payerID {
		lockOrder = []uint{payeeID, payerID}
	}

	wallets := make(map[uint]*models.Wallet, 2)
	for _, userID := range lockOrder {
		var wallet models.Wallet
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).
			First(&wallet).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return false, fmt.Errorf("failed to lock wallet for user %d: %w", userID, ErrWalletNotFound)
			}
			return false, fmt.Errorf("failed to lock wallet for user %d: %w", userID, err)
		}
		wallets[userID] = &wallet
	}

	payer := wallets[payerID]
	payee := wallets[payeeID]

	if !payer.HasSufficientBalance(amount) {
		log.Printf("MoveBalance: insufficient balance for user %d", payerID)
		return false, nil
	}

	payer.SetBalance(payer.Balance().Subtract(amount))
	payee.SetBalance(payee.Balance().Add(amount))

	if err := tx.Save(payer).Error; err != nil {
		return false, fmt.Errorf("failed to debit payer wallet: %w", err)
	}
	if err := tx.Save(payee).Error; err != nil {
		return false, fmt.Errorf("failed to credit payee wallet: %w", err)
	}

	return true, nil
}
