package services

import (
	"time"

	"console-bank/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PasswordServiceInterface hashes credentials before they are stored on a user
type PasswordServiceInterface interface {
	ValidateCredential(credential string) error
	HashCredential(credential string) (string, error)
}

// UserDirectoryInterface registers users and resolves logins
type UserDirectoryInterface interface {
	Register(username, credential string) (*models.User, error)
	Login(username, credential string) (*models.User, error)
	Count() int
}

// AccountServiceInterface defines account-related business operations for a logged-in user
type AccountServiceInterface interface {
	OpenAccount(user *models.User, holderName string, accountType models.AccountType, initialDeposit decimal.Decimal) (*models.Account, error)
	Deposit(user *models.User, account *models.Account, amount decimal.Decimal) error
	Withdraw(user *models.User, account *models.Account, amount decimal.Decimal) error
	AccrueInterest(user *models.User) []models.InterestResult
}

// AuditLoggerInterface records security and ledger events
type AuditLoggerInterface interface {
	LogUserRegistered(userID uuid.UUID, username string)
	LogRegistrationRejected(username, reason string)
	LogLoginSucceeded(userID uuid.UUID, username string)
	LogLoginFailed(username, reason string)
	LogLogout(userID uuid.UUID, username string)
	LogAccountOpened(userID uuid.UUID, accountNumber string, accountType models.AccountType, initialDeposit string)
	LogBalanceUpdate(userID uuid.UUID, accountNumber string, transactionType models.TransactionType, amount, oldBalance, newBalance string)
	LogOperationRejected(userID uuid.UUID, accountNumber, operation, reason string)
}

// MetricsRecorderInterface records operational counters
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
	ObserveAmount(name string, amount decimal.Decimal, tags map[string]string)
}
