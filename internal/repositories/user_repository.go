package repositories

import "payflow/internal/models"

// UserRepository provides read access to the user directory. Users are
// owned by an external provisioning process and are read-only here.
type UserRepository interface {
	GetByID(id uint) (*models.User, error)
}
