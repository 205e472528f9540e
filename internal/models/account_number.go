package models

import "fmt"

const (
	// AccountNumberPrefix is prepended to every generated account number
	AccountNumberPrefix = "AC"

	// AccountNumberSeed is the counter value before the first assignment,
	// so the first account opened is AC1001.
	AccountNumberSeed int64 = 1000
)

// AccountNumberSequence hands out account numbers. One sequence is shared by
// every user of a directory, which keeps numbers globally unique and strictly
// increasing in creation order.
type AccountNumberSequence struct {
	last int64
}

// NewAccountNumberSequence returns a sequence starting after AccountNumberSeed
func NewAccountNumberSequence() *AccountNumberSequence {
	return NewAccountNumberSequenceFrom(AccountNumberSeed)
}

// NewAccountNumberSequenceFrom returns a sequence whose first number is seed+1
func NewAccountNumberSequenceFrom(seed int64) *AccountNumberSequence {
	return &AccountNumberSequence{last: seed}
}

// Next increments the counter and returns the formatted number
func (s *AccountNumberSequence) Next() string {
	s.last++
	return FormatAccountNumber(s.last)
}

// Last returns the most recently assigned counter value
func (s *AccountNumberSequence) Last() int64 {
	return s.last
}

// FormatAccountNumber renders a counter value as an account number
func FormatAccountNumber(n int64) string {
	return fmt.Sprintf("%s%d", AccountNumberPrefix, n)
}
