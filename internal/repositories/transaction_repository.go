package repositories

import (
	"payflow/internal/models"

	"gorm.io/gorm"
)

// TransactionRepository is the append-only transaction log. Rows are
// created pending and updated exactly once to a terminal status.
type TransactionRepository interface {
	Create(tx *gorm.DB, txn *models.Transaction) error
	UpdateStatus(tx *gorm.DB, id uint, status string) error
	GetByID(id uint) (*models.Transaction, error)
	GetHistory(userID uint, limit, offset int) ([]models.Transaction, error)
}
