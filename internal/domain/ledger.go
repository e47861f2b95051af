package domain

import (
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// TransactionKind identifies the kind of a ledger record.
type TransactionKind string

const (
	TransactionDeposit    TransactionKind = "deposit"
	TransactionWithdrawal TransactionKind = "withdrawal"
)

// Record is an immutable fact stored in a ledger.
type Record struct {
	ID        string
	Kind      TransactionKind
	Amount    decimal.Decimal
	CreatedAt time.Time
}

// Ledger is an append-only, time-ordered log of records belonging to one
// account. Once appended, a record is never mutated or removed.
type Ledger struct {
	records []Record
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Append registers a new record with the current timestamp. It never fails.
func (l *Ledger) Append(kind TransactionKind, amount decimal.Decimal) Record {
	rec := Record{
		ID:        ulid.Make().String(),
		Kind:      kind,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}
	l.records = append(l.records, rec)
	return rec
}

// Records returns a copy of the records in insertion order, optionally
// restricted to one kind. The filter matches the kind name
// case-insensitively; an empty filter returns everything. Each call
// produces a fresh slice, so the result can be re-iterated safely.
func (l *Ledger) Records(kindFilter string) []Record {
	out := make([]Record, 0, len(l.records))
	for _, rec := range l.records {
		if kindFilter != "" && !strings.EqualFold(string(rec.Kind), kindFilter) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// Count returns how many records of the given kind exist over the ledger's
// lifetime.
func (l *Ledger) Count(kind TransactionKind) int {
	n := 0
	for _, rec := range l.records {
		if rec.Kind == kind {
			n++
		}
	}
	return n
}

// CountOn returns how many records carry the same UTC calendar date as day.
func (l *Ledger) CountOn(day time.Time) int {
	y, m, d := day.UTC().Date()
	n := 0
	for _, rec := range l.records {
		ry, rm, rd := rec.CreatedAt.UTC().Date()
		if ry == y && rm == m && rd == d {
			n++
		}
	}
	return n
}

// CountToday counts records registered on the current UTC date.
func (l *Ledger) CountToday() int {
	return l.CountOn(time.Now().UTC())
}

// Len returns the total number of records.
func (l *Ledger) Len() int {
	return len(l.records)
}
