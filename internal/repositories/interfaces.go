package repositories

import (
	"console-bank/internal/models"
)

// UserRepositoryInterface defines the contract for user storage keyed by username
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	ExistsByUsername(username string) bool
	Count() int
}
