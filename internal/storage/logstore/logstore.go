// Package logstore implements storage.Recorder by writing each transaction to
// a structured log stream. Nothing is kept.
package logstore

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mmynk/finform/internal/models"
	"github.com/mmynk/finform/internal/storage"
)

// Ensure LogStore implements storage.Recorder
var _ storage.Recorder = (*LogStore)(nil)

// LogStore writes transactions to a slog.Logger.
type LogStore struct {
	logger *slog.Logger
}

// New returns a LogStore writing to logger, or to slog.Default() if logger is nil.
func New(logger *slog.Logger) *LogStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogStore{logger: logger}
}

// Record logs the transaction at INFO with one attribute group per ledger.
func (s *LogStore) Record(ctx context.Context, tx *models.Transaction) error {
	if tx == nil {
		return errors.New("nil transaction")
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "Transaction saved",
		slog.String("id", tx.ID),
		slog.String("type", string(tx.Type)),
		slog.String("amount", tx.Amount.StringFixed(2)),
		slog.String("category", tx.Category),
		slog.String("amount_you_owe", tx.AmountYouOwe.StringFixed(2)),
		slog.String("amount_owed_to_you", tx.AmountOwedToYou.StringFixed(2)),
		slog.Bool("is_equal_split", tx.IsEqualSplit),
		slog.String("personal_amount", tx.PersonalAmount.StringFixed(2)),
		ledgerGroup("you_owe", tx.YouOwe),
		ledgerGroup("owed_to_you", tx.OwedToYou),
		slog.Time("created_at", tx.CreatedAt),
	)
	return nil
}

func ledgerGroup(key string, l models.SplitLedger) slog.Attr {
	people := make([]string, len(l.Participants))
	for i, p := range l.Participants {
		people[i] = p.Name + " " + p.Amount.StringFixed(2)
	}
	return slog.Group(key,
		slog.String("total_amount", l.TotalAmount.StringFixed(2)),
		slog.Bool("equal_split", l.EqualSplit),
		slog.Any("participants", people),
	)
}
