// Package form is the two-step transaction entry session. Step one takes the
// transaction type and amount; step two takes the category and the optional
// split between people, held in a ledger.DualLedger.
package form

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/finform/internal/calculator"
	"github.com/mmynk/finform/internal/ledger"
	"github.com/mmynk/finform/internal/models"
)

// Step is the form page currently shown.
type Step int

const (
	StepInfo    Step = 1
	StepDetails Step = 2
)

func (s Step) String() string {
	switch s {
	case StepInfo:
		return "Enter Transaction Info"
	case StepDetails:
		return "Add Details"
	default:
		return fmt.Sprintf("Step(%d)", int(s))
	}
}

// Options configure a Form.
type Options struct {
	DefaultType models.TransactionType
	Categories  []string

	// OnMutation is passed to the split ledger's callbacks.
	OnMutation func(side ledger.Side, op ledger.Op, l *ledger.Ledger)

	// Now and NewID default to time.Now and uuid.
	Now   func() time.Time
	NewID func() string
}

// Form holds the state of one entry session.
type Form struct {
	opts Options

	step     Step
	txType   models.TransactionType
	amount   string
	category string

	split     *ledger.DualLedger
	supplied  decimal.Decimal
	youOwe    decimal.Decimal
	owedToYou decimal.Decimal
}

// New returns a form on step one with the default type selected.
func New(opts Options) *Form {
	if opts.DefaultType == "" {
		opts.DefaultType = models.TypeExpense
	}
	if len(opts.Categories) == 0 {
		opts.Categories = models.DefaultCategories
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = func() string { return uuid.New().String() }
	}
	f := &Form{opts: opts}
	f.Reset()
	return f
}

// Reset clears every field, discards the split ledgers and returns to step one.
func (f *Form) Reset() {
	f.step = StepInfo
	f.txType = f.opts.DefaultType
	f.amount = ""
	f.category = ""
	f.split = nil
	f.supplied = decimal.Zero
	f.youOwe = decimal.Zero
	f.owedToYou = decimal.Zero
}

func (f *Form) Step() Step                   { return f.step }
func (f *Form) Type() models.TransactionType { return f.txType }
func (f *Form) AmountInput() string          { return f.amount }
func (f *Form) Category() string             { return f.category }
func (f *Form) Categories() []string         { return f.opts.Categories }

// SetType selects the transaction type. The empty type is allowed and blocks
// Next.
func (f *Form) SetType(t models.TransactionType) error {
	if t != "" && !slices.Contains(models.TransactionTypes, t) {
		return fmt.Errorf("%w: %q", ErrUnknownType, t)
	}
	f.txType = t
	return nil
}

// CycleType moves the selected type by delta through models.TransactionTypes,
// wrapping at either end.
func (f *Form) CycleType(delta int) models.TransactionType {
	n := len(models.TransactionTypes)
	i := slices.Index(models.TransactionTypes, f.txType)
	if i < 0 {
		i = 0
	} else {
		i = ((i+delta)%n + n) % n
	}
	f.txType = models.TransactionTypes[i]
	return f.txType
}

// SetAmountInput stores the raw amount text. It is validated by Next.
func (f *Form) SetAmountInput(s string) {
	f.amount = s
}

// Amount parses the amount text; invalid text is zero.
func (f *Form) Amount() decimal.Decimal {
	return calculator.ParseAmount(f.amount)
}

// Next moves from step one to step two once type and amount are filled in.
// The first time it creates the split ledgers and supplies the amount as both
// ledgers' total. Later visits keep the ledgers and only supply the amount
// again if it changed on step one.
func (f *Form) Next() error {
	if f.step != StepInfo {
		return ErrWrongStep
	}
	if f.txType == "" {
		return ErrTypeRequired
	}
	if strings.TrimSpace(f.amount) == "" {
		return ErrAmountRequired
	}
	amount, ok := calculator.ParseAmountStrict(f.amount)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidAmount, f.amount)
	}
	if f.split == nil {
		f.split = ledger.NewDualLedger(ledger.Callbacks{
			OnAmountYouOweChange:    func(t decimal.Decimal) { f.youOwe = t },
			OnAmountOwedToYouChange: func(t decimal.Decimal) { f.owedToYou = t },
			OnMutation:              f.opts.OnMutation,
		})
		f.split.SetTotalAmount(amount)
		f.supplied = amount
	} else if !amount.Equal(f.supplied) {
		f.split.SetTotalAmount(amount)
		f.supplied = amount
	}
	f.step = StepDetails
	return nil
}

// Back returns to step one, keeping everything entered so far.
func (f *Form) Back() {
	f.step = StepInfo
}

// SetCategory selects a category from the configured list; "" clears it.
func (f *Form) SetCategory(c string) error {
	if f.step != StepDetails {
		return ErrWrongStep
	}
	if c != "" && !slices.Contains(f.opts.Categories, c) {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, c)
	}
	f.category = c
	return nil
}

// Split is the split section, nil until step two is first reached.
func (f *Form) Split() *ledger.DualLedger {
	return f.split
}

// AmountYouOwe is the last "you owe" total pushed by the split section.
func (f *Form) AmountYouOwe() decimal.Decimal { return f.youOwe }

// AmountOwedToYou is the last "owed to you" total pushed by the split section.
func (f *Form) AmountOwedToYou() decimal.Decimal { return f.owedToYou }

// PersonalAmount nets the amount against the split totals.
func (f *Form) PersonalAmount() decimal.Decimal {
	return calculator.PersonalTrackedAmount(f.txType, f.Amount(), f.youOwe, f.owedToYou)
}

// Snapshot assembles the transaction record. It is only available on step two.
func (f *Form) Snapshot() (*models.Transaction, error) {
	if f.step != StepDetails {
		return nil, ErrWrongStep
	}
	tx := &models.Transaction{
		ID:              f.opts.NewID(),
		Type:            f.txType,
		Amount:          f.Amount(),
		Category:        f.category,
		AmountYouOwe:    f.youOwe,
		AmountOwedToYou: f.owedToYou,
		YouOwe:          f.split.YouOwe().Snapshot(),
		OwedToYou:       f.split.OwedToYou().Snapshot(),
		IsEqualSplit:    f.split.EqualSplit(),
		PersonalAmount:  f.PersonalAmount(),
		CreatedAt:       f.opts.Now(),
	}
	return tx, nil
}
