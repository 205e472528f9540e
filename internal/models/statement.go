package models

import (
	"iter"

	"github.com/shopspring/decimal"
)

// StatementSummary aggregates a transaction log
type StatementSummary struct {
	OpeningBalance   decimal.Decimal
	ClosingBalance   decimal.Decimal
	TotalDeposits    decimal.Decimal
	TotalWithdrawals decimal.Decimal
	TotalInterest    decimal.Decimal
	NetChange        decimal.Decimal
	TransactionCount int
	DepositCount     int
	WithdrawalCount  int
	InterestCount    int
}

// SummarizeStatement folds transactions into a summary ending at closing.
// The opening balance is what the account held before the first transaction,
// which for a complete log is the initial deposit.
func SummarizeStatement(transactions iter.Seq[Transaction], closing decimal.Decimal) StatementSummary {
	summary := StatementSummary{
		ClosingBalance:   closing,
		TotalDeposits:    decimal.Zero,
		TotalWithdrawals: decimal.Zero,
		TotalInterest:    decimal.Zero,
		NetChange:        decimal.Zero,
	}

	for t := range transactions {
		summary.TransactionCount++
		summary.NetChange = summary.NetChange.Add(t.SignedAmount())

		switch t.Type() {
		case TransactionTypeDeposit:
			summary.DepositCount++
			summary.TotalDeposits = summary.TotalDeposits.Add(t.Amount())
		case TransactionTypeWithdrawal:
			summary.WithdrawalCount++
			summary.TotalWithdrawals = summary.TotalWithdrawals.Add(t.Amount())
		case TransactionTypeInterest:
			summary.InterestCount++
			summary.TotalInterest = summary.TotalInterest.Add(t.Amount())
		}
	}

	summary.OpeningBalance = closing.Sub(summary.NetChange)
	return summary
}

// Summary summarizes the account's full transaction log
func (a *Account) Summary() StatementSummary {
	return SummarizeStatement(a.Statement(), a.balance)
}
