package ledger

import (
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/mmynk/finform/internal/calculator"
	"github.com/mmynk/finform/internal/models"
)

// Side identifies which direction of debt a ledger tracks.
type Side int

const (
	// YouOwe is money the user owes to the participants (accounts payable).
	YouOwe Side = iota
	// OwedToYou is money the participants owe the user (accounts receivable).
	OwedToYou
)

// String is the key used in logs and metric labels.
func (s Side) String() string {
	switch s {
	case YouOwe:
		return "you_owe"
	case OwedToYou:
		return "owed_to_you"
	default:
		return "unknown"
	}
}

// Label is the human-readable heading for the side.
func (s Side) Label() string {
	switch s {
	case YouOwe:
		return "Amount You Owe (AP)"
	case OwedToYou:
		return "Amount Owed to You (AR)"
	default:
		return ""
	}
}

// Mode is the split mode of a ledger.
type Mode int

const (
	// ModeManual leaves every participant amount to the user.
	ModeManual Mode = iota
	// ModeEqual keeps every participant at TotalAmount / count.
	ModeEqual
)

func (m Mode) String() string {
	if m == ModeEqual {
		return "equal"
	}
	return "manual"
}

// Op names a ledger mutation.
type Op string

const (
	OpAdd       Op = "add"
	OpRemove    Op = "remove"
	OpSetAmount Op = "set_amount"
	OpSetTotal  Op = "set_total"
	OpSetMode   Op = "set_mode"
)

// Ledger is one side of the split section: a participant registry, the total
// used as the equal-split base, and the split mode.
//
// In equal mode with at least one participant, every amount equals
// TotalAmount / Len after every mutation. In manual mode TotalAmount and the
// participant amounts are independent; Sum never feeds back into TotalAmount.
type Ledger struct {
	side        Side
	registry    *Registry
	totalAmount decimal.Decimal
	mode        Mode

	// onChange runs after every applied mutation, once the mode invariant
	// holds again.
	onChange func(l *Ledger, op Op)
}

// NewLedger returns an empty manual-mode ledger with a zero total.
func NewLedger(side Side, newID IDFunc) *Ledger {
	return &Ledger{
		side:        side,
		registry:    NewRegistry(newID),
		totalAmount: decimal.Zero,
		mode:        ModeManual,
	}
}

// Add appends a participant named name (trimmed). In equal mode every
// participant, the new one included, is redistributed to the new share and
// the returned participant carries that share. Blank names are a no-op.
func (l *Ledger) Add(name string) (models.Participant, bool) {
	p, ok := l.registry.Add(name)
	if !ok {
		return models.Participant{}, false
	}
	l.rebalance()
	p, _ = l.registry.Get(p.ID)
	l.changed(OpAdd)
	return p, true
}

// Remove deletes a participant. In equal mode the remaining participants are
// redistributed; if none remain nothing else happens. Unknown ids are a no-op.
func (l *Ledger) Remove(id string) bool {
	if !l.registry.Remove(id) {
		return false
	}
	l.rebalance()
	l.changed(OpRemove)
	return true
}

// SetAmount is a manual override of one participant's amount. In equal mode it
// switches the ledger back to manual and leaves every other amount alone.
// Negative amounts are clamped to zero. Unknown ids are a no-op.
func (l *Ledger) SetAmount(id string, amount decimal.Decimal) bool {
	if _, ok := l.registry.Get(id); !ok {
		return false
	}
	if l.mode == ModeEqual {
		l.mode = ModeManual
		slog.Debug("Equal split overridden", "ledger", l.side, "participant_id", id)
	}
	l.registry.SetAmount(id, amount)
	l.changed(OpSetAmount)
	return true
}

// SetAmountInput is SetAmount for raw user input; non-numeric text counts as 0.
func (l *Ledger) SetAmountInput(id, input string) bool {
	return l.SetAmount(id, calculator.ParseAmount(input))
}

// SetTotalAmount sets the redistribution base. Equal mode redistributes
// immediately; manual mode touches nothing else.
func (l *Ledger) SetTotalAmount(total decimal.Decimal) {
	l.totalAmount = calculator.ClampAmount(total)
	l.rebalance()
	l.changed(OpSetTotal)
}

// SetTotalAmountInput is SetTotalAmount for raw user input.
func (l *Ledger) SetTotalAmountInput(input string) {
	l.SetTotalAmount(calculator.ParseAmount(input))
}

// SetMode records the split mode. Switching to equal redistributes at once,
// unless there are no participants, in which case the mode is still recorded
// so that the next Add redistributes.
func (l *Ledger) SetMode(m Mode) {
	l.mode = m
	l.rebalance()
	l.changed(OpSetMode)
}

// ToggleEqual flips between manual and equal and returns the new mode.
func (l *Ledger) ToggleEqual() Mode {
	if l.mode == ModeEqual {
		l.SetMode(ModeManual)
	} else {
		l.SetMode(ModeEqual)
	}
	return l.mode
}

// Side reports which direction this ledger tracks.
func (l *Ledger) Side() Side { return l.side }

// Mode is the current split mode.
func (l *Ledger) Mode() Mode { return l.mode }

// TotalAmount is the redistribution base, not the participant sum.
func (l *Ledger) TotalAmount() decimal.Decimal { return l.totalAmount }

// Sum is the sum of the participant amounts.
func (l *Ledger) Sum() decimal.Decimal { return l.registry.Total() }

// Len is the number of participants.
func (l *Ledger) Len() int { return l.registry.Len() }

// Get returns one participant by id.
func (l *Ledger) Get(id string) (models.Participant, bool) { return l.registry.Get(id) }

// Participants returns a copy of the participants in display order.
func (l *Ledger) Participants() []models.Participant { return l.registry.Participants() }

// Snapshot returns the saved view of the ledger.
func (l *Ledger) Snapshot() models.SplitLedger {
	return models.SplitLedger{
		Participants: l.Participants(),
		TotalAmount:  l.totalAmount,
		EqualSplit:   l.mode == ModeEqual,
	}
}

func (l *Ledger) rebalance() {
	if l.mode != ModeEqual {
		return
	}
	share, ok := calculator.EqualShare(l.totalAmount, l.registry.Len())
	if !ok {
		return
	}
	l.registry.assignAll(share)
}

func (l *Ledger) changed(op Op) {
	if l.onChange != nil {
		l.onChange(l, op)
	}
}
