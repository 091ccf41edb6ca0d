package form

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/finform/internal/ledger"
	"github.com/mmynk/finform/internal/models"
)

var fixedNow = time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)

func newTestForm() *Form {
	return New(Options{
		Now:   func() time.Time { return fixedNow },
		NewID: func() string { return "tx-1" },
	})
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNew_Defaults(t *testing.T) {
	f := newTestForm()

	assert.Equal(t, StepInfo, f.Step())
	assert.Equal(t, models.TypeExpense, f.Type())
	assert.Equal(t, models.DefaultCategories, f.Categories())
	assert.Nil(t, f.Split())
	assert.True(t, f.AmountYouOwe().IsZero())
}

func TestNext_Validation(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(f *Form)
		wantErr error
	}{
		{"missing amount", func(f *Form) {}, ErrAmountRequired},
		{"blank amount", func(f *Form) { f.SetAmountInput("   ") }, ErrAmountRequired},
		{"non-numeric amount", func(f *Form) { f.SetAmountInput("ten") }, ErrInvalidAmount},
		{"missing type", func(f *Form) {
			f.SetAmountInput("10")
			_ = f.SetType("")
		}, ErrTypeRequired},
		{"valid", func(f *Form) { f.SetAmountInput("10") }, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestForm()
			tt.setup(f)
			err := f.Next()
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, StepDetails, f.Step())
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Equal(t, StepInfo, f.Step())
		})
	}
}

func TestNext_WrongStep(t *testing.T) {
	f := newTestForm()
	f.SetAmountInput("5")
	require.NoError(t, f.Next())
	assert.ErrorIs(t, f.Next(), ErrWrongStep)
}

func TestSetType(t *testing.T) {
	f := newTestForm()
	require.NoError(t, f.SetType(models.TypeSaving))
	assert.Equal(t, models.TypeSaving, f.Type())
	assert.ErrorIs(t, f.SetType("Gift"), ErrUnknownType)
	assert.Equal(t, models.TypeSaving, f.Type())
}

func TestCycleType(t *testing.T) {
	f := newTestForm()
	assert.Equal(t, models.TypeSaving, f.CycleType(1))
	assert.Equal(t, models.TypeRepayment, f.CycleType(1))
	assert.Equal(t, models.TypeIncome, f.CycleType(1))
	assert.Equal(t, models.TypeRepayment, f.CycleType(-1))
}

func TestNext_SuppliesAmountToLedgers(t *testing.T) {
	f := newTestForm()
	f.SetAmountInput("120")
	require.NoError(t, f.Next())

	split := f.Split()
	require.NotNil(t, split)
	assert.True(t, split.YouOwe().TotalAmount().Equal(dec("120")))
	assert.True(t, split.OwedToYou().TotalAmount().Equal(dec("120")))

	// User overrides one ledger's total, goes back without changing the amount.
	split.OwedToYou().SetTotalAmount(dec("60"))
	f.Back()
	require.NoError(t, f.Next())
	assert.Same(t, split, f.Split(), "ledgers survive Back")
	assert.True(t, split.OwedToYou().TotalAmount().Equal(dec("60")))

	// Changing the amount supplies it again.
	f.Back()
	f.SetAmountInput("90")
	require.NoError(t, f.Next())
	assert.True(t, split.OwedToYou().TotalAmount().Equal(dec("90")))
}

func TestSetCategory(t *testing.T) {
	f := newTestForm()
	assert.ErrorIs(t, f.SetCategory("Food"), ErrWrongStep)

	f.SetAmountInput("1")
	require.NoError(t, f.Next())
	require.NoError(t, f.SetCategory("Food"))
	assert.Equal(t, "Food", f.Category())
	assert.ErrorIs(t, f.SetCategory("Pets"), ErrUnknownCategory)
	require.NoError(t, f.SetCategory(""))
	assert.Equal(t, "", f.Category())
}

func TestSplitTotalsFlowIntoForm(t *testing.T) {
	f := newTestForm()
	f.SetAmountInput("100")
	require.NoError(t, f.Next())

	owed := f.Split().OwedToYou()
	owed.SetMode(ledger.ModeEqual)
	owed.Add("Alice")
	owed.Add("Bob")

	assert.True(t, f.AmountOwedToYou().Equal(dec("100")))
	assert.True(t, f.AmountYouOwe().IsZero())
	assert.True(t, f.PersonalAmount().IsZero(), "expense fully covered by others")

	owed.SetTotalAmount(dec("60"))
	assert.True(t, f.PersonalAmount().Equal(dec("40")))
}

func TestSnapshot(t *testing.T) {
	f := newTestForm()
	_, err := f.Snapshot()
	assert.ErrorIs(t, err, ErrWrongStep)

	require.NoError(t, f.SetType(models.TypeIncome))
	f.SetAmountInput("200")
	require.NoError(t, f.Next())
	require.NoError(t, f.SetCategory("Salary"))

	owe := f.Split().YouOwe()
	p, _ := owe.Add("Carol")
	owe.SetAmount(p.ID, dec("50"))

	tx, err := f.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, "tx-1", tx.ID)
	assert.Equal(t, models.TypeIncome, tx.Type)
	assert.True(t, tx.Amount.Equal(dec("200")))
	assert.Equal(t, "Salary", tx.Category)
	assert.True(t, tx.AmountYouOwe.Equal(dec("50")))
	assert.True(t, tx.AmountOwedToYou.IsZero())
	assert.True(t, tx.PersonalAmount.Equal(dec("150")))
	assert.False(t, tx.IsEqualSplit)
	require.Len(t, tx.YouOwe.Participants, 1)
	assert.Equal(t, "Carol", tx.YouOwe.Participants[0].Name)
	assert.Equal(t, fixedNow, tx.CreatedAt)
}

func TestReset(t *testing.T) {
	f := newTestForm()
	require.NoError(t, f.SetType(models.TypeSaving))
	f.SetAmountInput("10")
	require.NoError(t, f.Next())
	f.Split().YouOwe().Add("A")
	f.Split().YouOwe().SetMode(ledger.ModeEqual)

	f.Reset()

	assert.Equal(t, StepInfo, f.Step())
	assert.Equal(t, models.TypeExpense, f.Type())
	assert.Equal(t, "", f.AmountInput())
	assert.Nil(t, f.Split())
	assert.True(t, f.AmountYouOwe().IsZero())
}

func TestStepString(t *testing.T) {
	assert.Equal(t, "Enter Transaction Info", StepInfo.String())
	assert.Equal(t, "Add Details", StepDetails.String())
}
