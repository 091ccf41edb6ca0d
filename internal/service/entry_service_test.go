package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/finform/internal/form"
	"github.com/mmynk/finform/internal/ledger"
	"github.com/mmynk/finform/internal/metrics"
	"github.com/mmynk/finform/internal/models"
)

// memRecorder keeps records in memory for assertions.
type memRecorder struct {
	records []*models.Transaction
	err     error
}

func (r *memRecorder) Record(_ context.Context, tx *models.Transaction) error {
	if r.err != nil {
		return r.err
	}
	r.records = append(r.records, tx)
	return nil
}

func setupService(t *testing.T) (*EntryService, *memRecorder, *metrics.Metrics) {
	t.Helper()
	rec := &memRecorder{}
	m := metrics.New()
	return NewEntryService(rec, m), rec, m
}

func newForm() *form.Form {
	return form.New(form.Options{
		Now:   func() time.Time { return time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC) },
		NewID: func() string { return "tx-42" },
	})
}

func TestSave_EqualSplit(t *testing.T) {
	svc, rec, m := setupService(t)
	f := newForm()
	f.SetAmountInput("100")
	require.NoError(t, f.Next())

	owe := f.Split().YouOwe()
	owe.Add("Alice")
	owe.Add("Bob")
	owe.SetMode(ledger.ModeEqual)

	tx, err := svc.Save(context.Background(), f)
	require.NoError(t, err)
	require.Len(t, rec.records, 1)
	assert.Same(t, tx, rec.records[0])

	assert.Equal(t, "tx-42", tx.ID)
	assert.True(t, tx.IsEqualSplit)
	assert.True(t, tx.AmountYouOwe.Equal(decimal.NewFromInt(100)))
	for _, p := range tx.YouOwe.Participants {
		assert.Equal(t, "50.00", p.Amount.StringFixed(2))
	}

	assert.Equal(t, 1.0, testutil.ToFloat64(m.TransactionsSaved.WithLabelValues("Expense")))
	assert.Equal(t, 100.0, testutil.ToFloat64(m.SavedAmount.WithLabelValues("Expense")))
}

func TestSave_RejectedOnStepOne(t *testing.T) {
	svc, rec, m := setupService(t)
	f := newForm()

	_, err := svc.Save(context.Background(), f)
	assert.ErrorIs(t, err, form.ErrWrongStep)
	assert.Empty(t, rec.records)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SavesRejected.WithLabelValues("wrong_step")))
}

func TestSave_RecorderFailure(t *testing.T) {
	svc, rec, m := setupService(t)
	rec.err = errors.New("disk full")
	f := newForm()
	f.SetAmountInput("3")
	require.NoError(t, f.Next())

	_, err := svc.Save(context.Background(), f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SavesRejected.WithLabelValues("recorder")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.TransactionsSaved.WithLabelValues("Expense")))
}

func TestSave_NilMetrics(t *testing.T) {
	rec := &memRecorder{}
	svc := NewEntryService(rec, nil)
	f := newForm()
	f.SetAmountInput("8")
	require.NoError(t, f.Next())

	_, err := svc.Save(context.Background(), f)
	require.NoError(t, err)
	assert.Len(t, rec.records, 1)
}

func TestRejectReason(t *testing.T) {
	assert.Equal(t, "type", rejectReason(form.ErrUnknownType))
	assert.Equal(t, "amount", rejectReason(form.ErrInvalidAmount))
	assert.Equal(t, "recorder", rejectReason(errors.New("x")))
}
