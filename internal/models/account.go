package models

import (
	"errors"
	"iter"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// AccountType is the tagged variant of an account. Only interest eligibility
// depends on it.
type AccountType string

const (
	AccountTypeSavings  AccountType = "Savings"
	AccountTypeChecking AccountType = "Checking"
)

const (
	// InterestAccrualWindow is the minimum time between two interest postings
	InterestAccrualWindow = 30 * 24 * time.Hour

	// CurrencyPrecision is the number of minor-unit digits kept on money values
	CurrencyPrecision int32 = 2
)

// interestRate is the flat monthly rate credited to savings accounts
var interestRate = decimal.New(3, -2)

// InterestRate returns the monthly rate credited to savings accounts
func InterestRate() decimal.Decimal {
	return interestRate
}

var (
	ErrInvalidAccountType  = errors.New("invalid account type")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrNotEligible         = errors.New("account not eligible for interest")
)

// Account holds a balance and its append-only transaction log
type Account struct {
	number              string
	holderName          string
	accountType         AccountType
	balance             decimal.Decimal
	lastInterestAccrual time.Time
	transactions        []Transaction
	clock               Clock
}

// NewAccount builds an account numbered by seq. The initial deposit becomes
// the opening balance and is not recorded as a transaction.
func NewAccount(seq *AccountNumberSequence, clock Clock, holderName string, accountType AccountType, initialDeposit decimal.Decimal) (*Account, error) {
	if !IsValidAccountType(accountType) {
		return nil, ErrInvalidAccountType
	}

	if initialDeposit.IsNegative() || !HasCurrencyPrecision(initialDeposit) {
		return nil, ErrInvalidAmount
	}

	if clock == nil {
		clock = SystemClock{}
	}

	return &Account{
		number:              seq.Next(),
		holderName:          holderName,
		accountType:         accountType,
		balance:             initialDeposit,
		lastInterestAccrual: clock.Now(),
		clock:               clock,
	}, nil
}

func (a *Account) Number() string {
	return a.number
}

func (a *Account) HolderName() string {
	return a.holderName
}

func (a *Account) Type() AccountType {
	return a.accountType
}

// Balance returns the current balance
func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

func (a *Account) LastInterestAccrual() time.Time {
	return a.lastInterestAccrual
}

func (a *Account) TransactionCount() int {
	return len(a.transactions)
}

// IsSavings returns true for savings accounts
func (a *Account) IsSavings() bool {
	return a.accountType == AccountTypeSavings
}

// Deposit credits a positive amount and records a Deposit transaction
func (a *Account) Deposit(amount decimal.Decimal) error {
	if !isValidAmount(amount) {
		return ErrInvalidAmount
	}

	a.credit(TransactionTypeDeposit, amount)
	return nil
}

// CanWithdraw checks if the amount can be withdrawn
func (a *Account) CanWithdraw(amount decimal.Decimal) bool {
	return isValidAmount(amount) && a.balance.GreaterThanOrEqual(amount)
}

// Withdraw debits the account. An amount above the balance leaves the
// account untouched and returns ErrInsufficientBalance.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if !isValidAmount(amount) {
		return ErrInvalidAmount
	}

	if !a.CanWithdraw(amount) {
		return ErrInsufficientBalance
	}

	before := a.balance
	a.balance = a.balance.Sub(amount)
	a.record(TransactionTypeWithdrawal, amount, before)
	return nil
}

// InterestDue reports whether the accrual window has elapsed on a savings account
func (a *Account) InterestDue() bool {
	return a.IsSavings() && a.clock.Now().Sub(a.lastInterestAccrual) >= InterestAccrualWindow
}

// AccrueInterest credits one month of interest at the monthly rate, rounded to
// CurrencyPrecision, and restarts the accrual window.
func (a *Account) AccrueInterest() (decimal.Decimal, error) {
	if !a.InterestDue() {
		return decimal.Zero, ErrNotEligible
	}

	interest := a.balance.Mul(interestRate).Round(CurrencyPrecision)
	a.credit(TransactionTypeInterest, interest)
	a.lastInterestAccrual = a.clock.Now()
	return interest, nil
}

// Statement yields the transaction log in chronological order. Each call
// returns a fresh sequence over the records present when iteration starts.
func (a *Account) Statement() iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, t := range slices.Clone(a.transactions) {
			if !yield(t) {
				return
			}
		}
	}
}

func (a *Account) credit(txType TransactionType, amount decimal.Decimal) {
	before := a.balance
	a.balance = a.balance.Add(amount)
	a.record(txType, amount, before)
}

func (a *Account) record(txType TransactionType, amount, before decimal.Decimal) {
	a.transactions = append(a.transactions, newTransaction(txType, amount, before, a.balance, a.clock.Now()))
}

// HasCurrencyPrecision reports whether amount has no more than CurrencyPrecision decimal places
func HasCurrencyPrecision(amount decimal.Decimal) bool {
	return amount.Equal(amount.Round(CurrencyPrecision))
}

// isValidAmount accepts positive amounts expressible in minor units
func isValidAmount(amount decimal.Decimal) bool {
	return amount.IsPositive() && HasCurrencyPrecision(amount)
}

// IsValidAccountType checks if the account type is valid
func IsValidAccountType(accountType AccountType) bool {
	switch accountType {
	case AccountTypeSavings, AccountTypeChecking:
		return true
	default:
		return false
	}
}
