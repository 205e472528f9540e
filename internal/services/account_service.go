package services

import (
	"errors"
	"fmt"
	"log/slog"

	"console-bank/internal/models"

	"github.com/shopspring/decimal"
)

const (
	operationDeposit  = "deposit"
	operationWithdraw = "withdraw"
	operationInterest = "interest"
)

// accountService implements AccountServiceInterface
type accountService struct {
	sequence    *models.AccountNumberSequence
	auditLogger AuditLoggerInterface
	metrics     MetricsRecorderInterface
	logger      *slog.Logger
}

// NewAccountService creates an account service that numbers every account
// it opens from sequence, whichever user owns it.
func NewAccountService(
	sequence *models.AccountNumberSequence,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) AccountServiceInterface {
	return &accountService{
		sequence:    sequence,
		auditLogger: auditLogger,
		metrics:     metrics,
		logger:      logger,
	}
}

// OpenAccount opens an account for user
func (s *accountService) OpenAccount(user *models.User, holderName string, accountType models.AccountType, initialDeposit decimal.Decimal) (*models.Account, error) {
	account, err := user.OpenAccount(s.sequence, holderName, accountType, initialDeposit)
	if err != nil {
		return nil, fmt.Errorf("failed to open account: %w", err)
	}

	s.auditLogger.LogAccountOpened(user.ID, account.Number(), account.Type(), initialDeposit.StringFixed(models.CurrencyPrecision))
	s.metrics.IncrementCounter("account_opened", map[string]string{"account_type": string(account.Type())})

	return account, nil
}

// Deposit credits account
func (s *accountService) Deposit(user *models.User, account *models.Account, amount decimal.Decimal) error {
	before := account.Balance()
	if err := account.Deposit(amount); err != nil {
		s.rejected(user, account, operationDeposit, err)
		return err
	}

	s.recorded(user, account, models.TransactionTypeDeposit, amount, before)
	return nil
}

// Withdraw debits account. A declined withdrawal changes nothing.
func (s *accountService) Withdraw(user *models.User, account *models.Account, amount decimal.Decimal) error {
	before := account.Balance()
	if err := account.Withdraw(amount); err != nil {
		s.rejected(user, account, operationWithdraw, err)
		return err
	}

	s.recorded(user, account, models.TransactionTypeWithdrawal, amount, before)
	return nil
}

// AccrueInterest runs interest accrual across the user's savings accounts
func (s *accountService) AccrueInterest(user *models.User) []models.InterestResult {
	results := user.AccrueInterestOnAllSavings()
	for _, result := range results {
		if result.Err != nil {
			s.rejected(user, result.Account, operationInterest, result.Err)
			continue
		}

		before := result.Account.Balance().Sub(result.Amount)
		s.recorded(user, result.Account, models.TransactionTypeInterest, result.Amount, before)
		s.metrics.ObserveAmount("interest_accrued", result.Amount, nil)
	}
	return results
}

func (s *accountService) recorded(user *models.User, account *models.Account, txType models.TransactionType, amount, before decimal.Decimal) {
	s.auditLogger.LogBalanceUpdate(user.ID, account.Number(), txType,
		amount.StringFixed(models.CurrencyPrecision),
		before.StringFixed(models.CurrencyPrecision),
		account.Balance().StringFixed(models.CurrencyPrecision))
	s.metrics.IncrementCounter("transaction_recorded", map[string]string{"transaction_type": string(txType)})
}

func (s *accountService) rejected(user *models.User, account *models.Account, operation string, err error) {
	reason := rejectionReason(err)
	s.auditLogger.LogOperationRejected(user.ID, account.Number(), operation, reason)
	s.metrics.IncrementCounter("operation_rejected", map[string]string{"operation": operation, "reason": reason})
	s.logger.Debug("operation rejected", "operation", operation, "account_number", account.Number(), "error", err)
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, models.ErrInsufficientBalance):
		return "insufficient_balance"
	case errors.Is(err, models.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, models.ErrNotEligible):
		return "not_eligible"
	default:
		return "unknown"
	}
}
