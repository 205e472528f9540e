package repositories

import (
	"errors"

	"console-bank/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserRepository keeps users in memory for the lifetime of the process.
// It is not safe for concurrent use.
type UserRepository struct {
	users map[string]*models.User
}

// NewUserRepository creates an empty user repository
func NewUserRepository() UserRepositoryInterface {
	return &UserRepository{
		users: make(map[string]*models.User),
	}
}

// Create stores a user under its username
func (r *UserRepository) Create(user *models.User) error {
	if user == nil {
		return errors.New("user cannot be nil")
	}

	if _, exists := r.users[user.Username]; exists {
		return ErrUserAlreadyExists
	}

	r.users[user.Username] = user
	return nil
}

// GetByUsername returns the stored user, the same pointer on every call
func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// ExistsByUsername checks if a username is taken
func (r *UserRepository) ExistsByUsername(username string) bool {
	_, exists := r.users[username]
	return exists
}

// Count returns the number of registered users
func (r *UserRepository) Count() int {
	return len(r.users)
}
