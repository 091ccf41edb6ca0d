package ledger

import (
	"log/slog"

	"github.com/shopspring/decimal"
)

// Totals are the two aggregates pushed to the enclosing form.
type Totals struct {
	YouOwe    decimal.Decimal
	OwedToYou decimal.Decimal
}

// Callbacks receive the aggregates after every mutation of either ledger.
// Both totals are emitted every time, in YouOwe then OwedToYou order.
// Any field may be nil.
type Callbacks struct {
	OnAmountYouOweChange    func(total decimal.Decimal)
	OnAmountOwedToYouChange func(total decimal.Decimal)

	// OnMutation runs before the totals are emitted. Used for metrics.
	OnMutation func(side Side, op Op, l *Ledger)
}

// Option configures a DualLedger.
type Option func(*DualLedger)

// WithIDFunc replaces the participant id source for both ledgers.
func WithIDFunc(f IDFunc) Option {
	return func(d *DualLedger) { d.newID = f }
}

// DualLedger owns the "you owe" and "owed to you" ledgers. They share
// nothing: no participants, no totals, no redistribution across sides.
type DualLedger struct {
	youOwe    *Ledger
	owedToYou *Ledger
	totals    Totals
	cb        Callbacks
	newID     IDFunc
}

// NewDualLedger returns two empty manual-mode ledgers with zero totals.
func NewDualLedger(cb Callbacks, opts ...Option) *DualLedger {
	d := &DualLedger{cb: cb}
	for _, opt := range opts {
		opt(d)
	}
	d.init()
	return d
}

func (d *DualLedger) init() {
	d.youOwe = NewLedger(YouOwe, d.newID)
	d.owedToYou = NewLedger(OwedToYou, d.newID)
	d.youOwe.onChange = d.recompute
	d.owedToYou.onChange = d.recompute
	d.totals = Totals{YouOwe: decimal.Zero, OwedToYou: decimal.Zero}
}

// YouOwe is the ledger of people the user owes.
func (d *DualLedger) YouOwe() *Ledger { return d.youOwe }

// OwedToYou is the ledger of people who owe the user.
func (d *DualLedger) OwedToYou() *Ledger { return d.owedToYou }

// Ledger returns the ledger for side.
func (d *DualLedger) Ledger(side Side) *Ledger {
	if side == OwedToYou {
		return d.owedToYou
	}
	return d.youOwe
}

// Totals returns the aggregates as of the last mutation.
func (d *DualLedger) Totals() Totals { return d.totals }

// EqualSplit reports whether either ledger is in equal mode.
func (d *DualLedger) EqualSplit() bool {
	return d.youOwe.Mode() == ModeEqual || d.owedToYou.Mode() == ModeEqual
}

// SetTotalAmount supplies the same redistribution base to both ledgers.
func (d *DualLedger) SetTotalAmount(total decimal.Decimal) {
	d.youOwe.SetTotalAmount(total)
	d.owedToYou.SetTotalAmount(total)
}

// Reset discards both ledgers and emits zero totals.
func (d *DualLedger) Reset() {
	d.init()
	d.emit()
}

func (d *DualLedger) recompute(l *Ledger, op Op) {
	if d.cb.OnMutation != nil {
		d.cb.OnMutation(l.Side(), op, l)
	}
	d.totals = Totals{
		YouOwe:    d.youOwe.Sum(),
		OwedToYou: d.owedToYou.Sum(),
	}
	slog.Debug("Split totals recomputed",
		"ledger", l.Side(),
		"op", op,
		"mode", l.Mode(),
		"participants", l.Len(),
		"you_owe", d.totals.YouOwe.StringFixed(2),
		"owed_to_you", d.totals.OwedToYou.StringFixed(2),
	)
	d.emit()
}

func (d *DualLedger) emit() {
	if d.cb.OnAmountYouOweChange != nil {
		d.cb.OnAmountYouOweChange(d.totals.YouOwe)
	}
	if d.cb.OnAmountOwedToYouChange != nil {
		d.cb.OnAmountOwedToYouChange(d.totals.OwedToYou)
	}
}
