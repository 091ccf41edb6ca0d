// Package ledger holds the split-amount state of the entry form: an ordered
// participant registry per ledger, the manual/equal split engine on top of it,
// and the coordinator that owns the two opposite-direction ledgers.
//
// Everything here is single-owner and synchronous. A DualLedger belongs to one
// form session and is never shared, so there is no locking.
package ledger

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/finform/internal/calculator"
	"github.com/mmynk/finform/internal/models"
)

// IDFunc returns a fresh participant id.
type IDFunc func() string

// NewUUID is the default IDFunc.
func NewUUID() string {
	return uuid.New().String()
}

// Registry is an ordered list of participants for one ledger side.
// Insertion order is display order.
//
// A Registry on its own does not enforce any split mode; Ledger wraps it and
// re-applies the mode after each mutation.
type Registry struct {
	participants []models.Participant
	newID        IDFunc
}

// NewRegistry returns an empty registry. A nil newID uses NewUUID.
func NewRegistry(newID IDFunc) *Registry {
	if newID == nil {
		newID = NewUUID
	}
	return &Registry{newID: newID}
}

// Add appends a participant with a zero amount. Blank names are rejected and
// ok is false.
func (r *Registry) Add(name string) (p models.Participant, ok bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Participant{}, false
	}
	id := r.newID()
	for r.index(id) >= 0 {
		id = r.newID()
	}
	p = models.Participant{ID: id, Name: name, Amount: decimal.Zero}
	r.participants = append(r.participants, p)
	return p, true
}

// Remove deletes the participant with the given id. Unknown ids are ignored.
func (r *Registry) Remove(id string) bool {
	i := r.index(id)
	if i < 0 {
		return false
	}
	r.participants = append(r.participants[:i], r.participants[i+1:]...)
	return true
}

// SetAmount sets one participant's amount, clamped to be non-negative.
// Unknown ids are ignored.
func (r *Registry) SetAmount(id string, amount decimal.Decimal) bool {
	i := r.index(id)
	if i < 0 {
		return false
	}
	r.participants[i].Amount = calculator.ClampAmount(amount)
	return true
}

// Total is the sum of all participant amounts.
func (r *Registry) Total() decimal.Decimal {
	amounts := make([]decimal.Decimal, len(r.participants))
	for i, p := range r.participants {
		amounts[i] = p.Amount
	}
	return calculator.Sum(amounts)
}

// Len is the number of participants.
func (r *Registry) Len() int {
	return len(r.participants)
}

// Get returns the participant with the given id.
func (r *Registry) Get(id string) (models.Participant, bool) {
	i := r.index(id)
	if i < 0 {
		return models.Participant{}, false
	}
	return r.participants[i], true
}

// Participants returns a copy of the participants in display order.
func (r *Registry) Participants() []models.Participant {
	out := make([]models.Participant, len(r.participants))
	copy(out, r.participants)
	return out
}

// assignAll sets every participant's amount to a.
func (r *Registry) assignAll(a decimal.Decimal) {
	for i := range r.participants {
		r.participants[i].Amount = a
	}
}

func (r *Registry) index(id string) int {
	for i, p := range r.participants {
		if p.ID == id {
			return i
		}
	}
	return -1
}
