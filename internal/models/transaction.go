package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType identifies the kind of ledger event
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "Deposit"
	TransactionTypeWithdrawal TransactionType = "Withdrawal"
	TransactionTypeInterest   TransactionType = "Interest"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("amount must be positive")
)

// Transaction is one immutable ledger event recorded by an Account.
// Fields are only readable through accessors.
type Transaction struct {
	id            uuid.UUID
	reference     string
	txType        TransactionType
	amount        decimal.Decimal
	balanceBefore decimal.Decimal
	balanceAfter  decimal.Decimal
	createdAt     time.Time
}

func newTransaction(txType TransactionType, amount, before, after decimal.Decimal, at time.Time) Transaction {
	return Transaction{
		id:            uuid.New(),
		reference:     GenerateTransactionReference(at),
		txType:        txType,
		amount:        amount,
		balanceBefore: before,
		balanceAfter:  after,
		createdAt:     at,
	}
}

func (t Transaction) ID() uuid.UUID {
	return t.id
}

func (t Transaction) Reference() string {
	return t.reference
}

func (t Transaction) Type() TransactionType {
	return t.txType
}

// Amount is always non-negative; see SignedAmount for the effect on the balance
func (t Transaction) Amount() decimal.Decimal {
	return t.amount
}

func (t Transaction) BalanceBefore() decimal.Decimal {
	return t.balanceBefore
}

func (t Transaction) BalanceAfter() decimal.Decimal {
	return t.balanceAfter
}

func (t Transaction) CreatedAt() time.Time {
	return t.createdAt
}

// Validate checks the record is internally consistent
func (t Transaction) Validate() error {
	if !IsValidTransactionType(t.txType) {
		return ErrInvalidTransactionType
	}

	if t.amount.IsNegative() {
		return ErrInvalidAmount
	}

	return t.ensureBalanceIsCorrect()
}

// IsCredit reports whether the transaction increased the balance
func (t Transaction) IsCredit() bool {
	return t.txType == TransactionTypeDeposit || t.txType == TransactionTypeInterest
}

// SignedAmount returns the amount with the sign it had on the balance
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.IsCredit() {
		return t.amount
	}
	return t.amount.Neg()
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType TransactionType) bool {
	switch transactionType {
	case TransactionTypeDeposit, TransactionTypeWithdrawal, TransactionTypeInterest:
		return true
	default:
		return false
	}
}

// GenerateTransactionReference generates a human-readable transaction reference
func GenerateTransactionReference(at time.Time) string {
	return "TXN-" + uuid.New().String()[:8] + "-" + at.Format("20060102150405")
}

func (t Transaction) ensureBalanceIsCorrect() error {
	if !t.balanceBefore.Add(t.SignedAmount()).Equal(t.balanceAfter) {
		return errors.New("balance calculation mismatch")
	}
	return nil
}
