package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyRates is one published reporting period: the first calendar day of
// the month it covers and the per-currency rates in force from that day.
// Currency codes are kept exactly as published; lookups are expected to
// normalize to uppercase before matching.
type MonthlyRates struct {
	Start time.Time
	Rates map[string]decimal.Decimal
}

// CurrencyCodes returns the codes present in this period, sorted.
func (m MonthlyRates) CurrencyCodes() []string {
	codes := make([]string, 0, len(m.Rates))
	for code := range m.Rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Date truncates t to a calendar date in UTC. Rate lookups only deal in
// whole days; timestamps and zones carry no meaning here.
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
