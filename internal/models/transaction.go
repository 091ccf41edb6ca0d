package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the kind of cash movement being recorded.
type TransactionType string

const (
	TypeIncome    TransactionType = "Income"
	TypeExpense   TransactionType = "Expense"
	TypeSaving    TransactionType = "Saving"
	TypeRepayment TransactionType = "Repayment"
)

// TransactionTypes lists every type in display order.
var TransactionTypes = []TransactionType{TypeIncome, TypeExpense, TypeSaving, TypeRepayment}

// DefaultCategories is the category list used when none is configured.
var DefaultCategories = []string{"Food", "Salary", "Utilities", "Transport", "Entertainment", "Healthcare"}

// ParseTransactionType matches s against the known types, ignoring case and
// surrounding whitespace.
func ParseTransactionType(s string) (TransactionType, bool) {
	s = strings.TrimSpace(s)
	for _, t := range TransactionTypes {
		if strings.EqualFold(string(t), s) {
			return t, true
		}
	}
	return "", false
}

// IsInflow reports whether money comes in to the user for this type.
func (t TransactionType) IsInflow() bool {
	return t == TypeIncome
}

// SplitLedger is the saved view of one side of the split section.
type SplitLedger struct {
	// Participants in display order.
	Participants []Participant

	// TotalAmount is the redistribution base the user (or the form) supplied.
	TotalAmount decimal.Decimal

	// EqualSplit is true when the ledger was in equal mode at save time.
	EqualSplit bool
}

// Transaction is the record produced by the entry form on save.
type Transaction struct {
	// ID is assigned when the record is assembled (UUID format).
	ID string

	Type     TransactionType
	Amount   decimal.Decimal
	Category string

	// AmountYouOwe is the sum of the "you owe" ledger.
	AmountYouOwe decimal.Decimal

	// AmountOwedToYou is the sum of the "owed to you" ledger.
	AmountOwedToYou decimal.Decimal

	YouOwe    SplitLedger
	OwedToYou SplitLedger

	// IsEqualSplit is true when either ledger is in equal mode.
	IsEqualSplit bool

	// PersonalAmount nets Amount against the two ledger totals.
	PersonalAmount decimal.Decimal

	CreatedAt time.Time
}
