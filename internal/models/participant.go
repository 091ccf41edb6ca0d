package models

import "github.com/shopspring/decimal"

// Participant is one named party on a ledger.
type Participant struct {
	// ID is unique within the owning ledger and stable for the session
	// (UUID format by default).
	ID string

	// Name is the trimmed display name. Never empty; duplicates are allowed.
	Name string

	// Amount is this participant's portion of the ledger. Never negative.
	Amount decimal.Decimal
}
