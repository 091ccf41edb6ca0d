// Package storage provides the sink that saved transactions are handed to.
package storage

import (
	"context"

	"github.com/mmynk/finform/internal/models"
)

// Recorder receives saved transactions.
// Implementations decide where the record goes; nothing in finform reads
// records back.
type Recorder interface {
	// Record accepts one assembled transaction. The transaction's ID is
	// already set.
	Record(ctx context.Context, tx *models.Transaction) error
}
