package calculator

import (
	"github.com/mmynk/finform/internal/models"
	"github.com/shopspring/decimal"
)

// PersonalTrackedAmount nets a transaction's cash movement against the two
// split totals.
//
// For outflows (expense, saving, repayment) the user's own share is what they
// paid, plus what they still owe others for it, minus what others will pay
// them back:
//
//	personal = amount + youOwe - owedToYou
//
// For income the signs flip: money collected on someone else's behalf is not
// the user's, and money still owed to them is.
//
//	personal = amount - youOwe + owedToYou
func PersonalTrackedAmount(t models.TransactionType, amount, youOwe, owedToYou decimal.Decimal) decimal.Decimal {
	if t.IsInflow() {
		return amount.Sub(youOwe).Add(owedToYou)
	}
	return amount.Add(youOwe).Sub(owedToYou)
}

// NetPosition is owedToYou minus youOwe: positive when the user is owed money
// overall.
func NetPosition(youOwe, owedToYou decimal.Decimal) decimal.Decimal {
	return owedToYou.Sub(youOwe)
}
