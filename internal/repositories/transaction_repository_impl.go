package repositories

import (
	"fmt"

	"payflow/internal/models"

	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

func (r *transactionRepository) Create(tx *gorm.DB, txn *models.Transaction) error {
	result := tx.Create(txn)
	if result.Error != nil {
		return fmt.Errorf("failed to create transaction: %w", result.Error)
	}
	return nil
}

// UpdateStatus moves a transaction to a new status. Transitions out of
// a terminal status are refused; the guarded UPDATE makes the check
// hold even under concurrent writers.
func (r *transactionRepository) UpdateStatus(tx *gorm.DB, id uint, status string) error {
	result := tx.Model(&models.Transaction{}).
		Where("id = ? AND status NOT IN ?", id, []string{
			models.TransactionStatusCompleted,
			models.TransactionStatusFailed,
		}).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update transaction status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		var txn models.Transaction
		if err := tx.First(&txn, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrTransactionNotFound
			}
			return fmt.Errorf("failed to update transaction status: %w", err)
		}
		if models.IsTerminalStatus(txn.Status) {
			return ErrTerminalStatus
		}
		return fmt.Errorf("failed to update transaction %d status to %s", id, status)
	}
	return nil
}

func (r *transactionRepository) GetByID(id uint) (*models.Transaction, error) {
	var txn models.Transaction
	if err := r.db.First(&txn, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &txn, nil
}

func (r *transactionRepository) GetHistory(userID uint, limit, offset int) ([]models.Transaction, error) {
	var history []models.Transaction
	err := r.db.
		Where("payer_id = ? OR payee_id = ?", userID, userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&history).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction history: %w", err)
	}
	return history, nil
}
