package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultBCryptCost is used when the configured cost is out of bcrypt's range
	DefaultBCryptCost = 12

	MaxCredentialLength = 72 // Bcrypt algorithm limitation
)

var ErrCredentialTooLong = fmt.Errorf("credential must not exceed %d bytes", MaxCredentialLength)

// PasswordService hashes credentials with bcrypt
type PasswordService struct {
	cost int
}

// NewPasswordService creates a password service with the given bcrypt cost
func NewPasswordService(cost int) PasswordServiceInterface {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBCryptCost
	}
	return &PasswordService{cost: cost}
}

// ValidateCredential only enforces the bcrypt input limit; any other
// string, including the empty one, is an acceptable credential.
func (ps *PasswordService) ValidateCredential(credential string) error {
	if len(credential) > MaxCredentialLength {
		return ErrCredentialTooLong
	}
	return nil
}

// HashCredential validates and hashes a credential
func (ps *PasswordService) HashCredential(credential string) (string, error) {
	if err := ps.ValidateCredential(credential); err != nil {
		return "", err
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(credential), ps.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrCredentialTooLong
		}
		return "", fmt.Errorf("failed to hash credential: %w", err)
	}

	return string(hashedBytes), nil
}

// Cost returns the bcrypt cost in use
func (ps *PasswordService) Cost() int {
	return ps.cost
}
