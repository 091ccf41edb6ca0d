// Package models defines the core domain models for finform.
//
// # Models
//
//   - Participant: a named party assigned a portion of one ledger's total
//   - TransactionType: the fixed set of transaction kinds the form offers
//   - Transaction: the record assembled by the form on save
//
// Participants are identified by an opaque id assigned when they are added;
// names are display strings and may repeat.
//
// # Money
//
// Amounts are shopspring decimals. They are stored at full precision and only
// rounded to two places for display, so equal shares of a total that does not
// divide evenly keep their representation error instead of being corrected.
//
// # Lifetime
//
// Nothing here is persisted. A Transaction exists only long enough to be handed
// to a storage.Recorder, which writes it to the diagnostic log stream.
package models
