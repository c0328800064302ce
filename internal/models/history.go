package models

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// EmptyStatementMessage is rendered for an account without transactions
const EmptyStatementMessage = "No transactions recorded."

// StatementTimeLayout is the day/month/year layout used when rendering records
const StatementTimeLayout = "02/01/2006 15:04:05"

// History is the append-only log of transactions posted to one account
type History struct {
	now     func() time.Time
	entries []TransactionRecord
	mu      sync.RWMutex
}

// NewHistory creates an empty history stamped by the given clock
func NewHistory(now func() time.Time) *History {
	if now == nil {
		now = time.Now
	}
	return &History{now: now}
}

// Record appends a record with the current timestamp and returns it
func (h *History) Record(kind TransactionKind, amount decimal.Decimal) TransactionRecord {
	rec := TransactionRecord{
		Timestamp: h.now(),
		Amount:    amount,
		Kind:      kind,
	}

	h.mu.Lock()
	h.entries = append(h.entries, rec)
	h.mu.Unlock()

	return rec
}

// Entries returns a copy of the records in insertion order
func (h *History) Entries() []TransactionRecord {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]TransactionRecord, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of records
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}

// FormattedStatement renders one line per record, oldest first.
func (h *History) FormattedStatement() string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.entries) == 0 {
		return EmptyStatementMessage
	}

	lines := make([]string, 0, len(h.entries))
	for _, rec := range h.entries {
		lines = append(lines, fmt.Sprintf("%s  %-10s $ %s",
			rec.Timestamp.Format(StatementTimeLayout),
			rec.Kind,
			rec.Amount.StringFixed(2),
		))
	}
	return strings.Join(lines, "\n")
}

// WithdrawalCountOnDate counts withdrawals posted on the calendar date of day,
// evaluated in day's location.
func (h *History) WithdrawalCountOnDate(day time.Time) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	count := 0
	for _, rec := range h.entries {
		if rec.Kind == TransactionKindWithdrawal && sameDate(rec.Timestamp, day) {
			count++
		}
	}
	return count
}

func sameDate(t, day time.Time) bool {
	y1, m1, d1 := t.In(day.Location()).Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
