package models

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

var ErrUsernameRequired = errors.New("username is required")

// User owns a credential and an ordered list of accounts
type User struct {
	ID             uuid.UUID
	Username       string
	CreatedAt      time.Time
	credentialHash string
	accounts       []*Account
	clock          Clock
}

// InterestResult is the outcome of accruing interest on one savings account
type InterestResult struct {
	Account *Account
	Amount  decimal.Decimal
	Err     error
}

// NewUser creates a user from an already hashed credential
func NewUser(username, credentialHash string, clock Clock) (*User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, ErrUsernameRequired
	}

	if clock == nil {
		clock = SystemClock{}
	}

	return &User{
		ID:             uuid.New(),
		Username:       username,
		CreatedAt:      clock.Now(),
		credentialHash: credentialHash,
		clock:          clock,
	}, nil
}

// Authenticate reports whether credential matches the stored one
func (u *User) Authenticate(credential string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.credentialHash), []byte(credential)) == nil
}

// OpenAccount creates an account numbered from seq and appends it to the user
func (u *User) OpenAccount(seq *AccountNumberSequence, holderName string, accountType AccountType, initialDeposit decimal.Decimal) (*Account, error) {
	account, err := NewAccount(seq, u.clock, holderName, accountType, initialDeposit)
	if err != nil {
		return nil, err
	}

	u.accounts = append(u.accounts, account)
	return account, nil
}

// Accounts returns the user's accounts in creation order
func (u *User) Accounts() []*Account {
	return slices.Clone(u.accounts)
}

func (u *User) HasAccounts() bool {
	return len(u.accounts) > 0
}

// SelectAccount resolves a 1-based index from the displayed account listing
func (u *User) SelectAccount(index int) (*Account, bool) {
	if index < 1 || index > len(u.accounts) {
		return nil, false
	}
	return u.accounts[index-1], true
}

// AccrueInterestOnAllSavings accrues interest on every savings account.
// Checking accounts are skipped and do not appear in the result.
func (u *User) AccrueInterestOnAllSavings() []InterestResult {
	var results []InterestResult
	for _, account := range u.accounts {
		if !account.IsSavings() {
			continue
		}

		amount, err := account.AccrueInterest()
		results = append(results, InterestResult{Account: account, Amount: amount, Err: err})
	}
	return results
}
