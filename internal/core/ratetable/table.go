// Package ratetable holds the time-ordered collection of published rate
// periods and answers "which period is in force at date D" queries.
package ratetable

import (
	"sort"
	"time"

	"hmrc-rates/internal/core/domain"
)

// Table is an ordered collection of monthly rate periods keyed by their
// start date. Inserts happen only while a converter is being built; once
// built the table is read-only and safe for concurrent readers.
type Table struct {
	entries []domain.MonthlyRates // sorted by Start, ascending
}

// New returns an empty table.
func New() *Table {
	return &Table{}
}

// Insert adds a period to the table, keeping entries ordered by start date.
// Inserting a period whose start date is already present replaces the prior
// entry for that date.
func (t *Table) Insert(m domain.MonthlyRates) {
	m.Start = domain.Date(m.Start)
	i := sort.Search(len(t.entries), func(i int) bool {
		return !t.entries[i].Start.Before(m.Start)
	})
	if i < len(t.entries) && t.entries[i].Start.Equal(m.Start) {
		t.entries[i] = m
		return
	}
	t.entries = append(t.entries, domain.MonthlyRates{})
	copy(t.entries[i+1:], t.entries[i:])
	t.entries[i] = m
}

// InForce returns the period whose start date is the greatest one not after
// the given date. Periods are open-ended until superseded, so a date beyond
// the most recent period still resolves to it; only dates earlier than the
// first period have no answer.
func (t *Table) InForce(date time.Time) (domain.MonthlyRates, bool) {
	d := domain.Date(date)
	i := sort.Search(len(t.entries), func(i int) bool {
		return t.entries[i].Start.After(d)
	})
	if i == 0 {
		return domain.MonthlyRates{}, false
	}
	return t.entries[i-1], true
}

// Len reports the number of periods in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// Periods returns the start dates of all loaded periods in ascending order.
func (t *Table) Periods() []time.Time {
	starts := make([]time.Time, len(t.entries))
	for i, e := range t.entries {
		starts[i] = e.Start
	}
	return starts
}
