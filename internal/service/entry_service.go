package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mmynk/finform/internal/form"
	"github.com/mmynk/finform/internal/metrics"
	"github.com/mmynk/finform/internal/models"
	"github.com/mmynk/finform/internal/storage"
)

// EntryService implements the form's save action.
type EntryService struct {
	recorder storage.Recorder
	metrics  *metrics.Metrics
}

// NewEntryService creates a new EntryService with the given recorder.
// m may be nil.
func NewEntryService(recorder storage.Recorder, m *metrics.Metrics) *EntryService {
	return &EntryService{recorder: recorder, metrics: m}
}

// rejectReason maps a save error to a metric label.
func rejectReason(err error) string {
	switch {
	case errors.Is(err, form.ErrWrongStep):
		return "wrong_step"
	case errors.Is(err, form.ErrTypeRequired), errors.Is(err, form.ErrUnknownType):
		return "type"
	case errors.Is(err, form.ErrAmountRequired), errors.Is(err, form.ErrInvalidAmount):
		return "amount"
	default:
		return "recorder"
	}
}

// Save snapshots the form, hands the record to the recorder and returns it.
// The form itself is left untouched; callers reset it on success.
func (s *EntryService) Save(ctx context.Context, f *form.Form) (*models.Transaction, error) {
	tx, err := f.Snapshot()
	if err != nil {
		slog.Warn("Save rejected", "step", f.Step(), "error", err)
		s.rejected(err)
		return nil, fmt.Errorf("save: %w", err)
	}

	slog.Debug("Saving transaction",
		"id", tx.ID,
		"type", tx.Type,
		"amount", tx.Amount.StringFixed(2),
		"you_owe_participants", len(tx.YouOwe.Participants),
		"owed_to_you_participants", len(tx.OwedToYou.Participants),
	)

	if err := s.recorder.Record(ctx, tx); err != nil {
		slog.Error("Recording transaction failed", "id", tx.ID, "error", err)
		s.rejected(err)
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	if s.metrics != nil {
		s.metrics.ObserveSave(string(tx.Type), tx.Amount, len(tx.YouOwe.Participants), len(tx.OwedToYou.Participants))
	}
	return tx, nil
}

func (s *EntryService) rejected(err error) {
	if s.metrics != nil {
		s.metrics.ObserveRejected(rejectReason(err))
	}
}
