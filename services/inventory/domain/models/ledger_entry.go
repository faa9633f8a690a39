package models

import "time"

// LedgerEntry is one immutable record in the append-only stock ledger.
// Entries are never updated or deleted; ordering is by Timestamp with ties
// broken by insertion order (ID).
type LedgerEntry struct {
	ID          int64
	ProductID   ProductID
	Action      Action
	Quantity    int // positive delta magnitude; Action carries the direction
	PerformedBy string
	Location    string
	Notes       string
	Timestamp   time.Time
}

// LedgerRecord is a ledger entry joined with its product's display attributes
// for reporting. The join fields are a convenience snapshot of current state,
// not part of the immutable entry.
type LedgerRecord struct {
	LedgerEntry
	ProductName string
	ProductType string
	ProductSize string
}
