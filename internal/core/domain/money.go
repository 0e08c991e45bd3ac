package domain

import "github.com/shopspring/decimal"

// GBP is a converted amount in British Pounds, held to exactly two
// fractional digits.
type GBP struct {
	amount decimal.Decimal
}

// NewGBP rounds the given amount to the precision of money (2 decimal
// places, banker's rounding) and wraps it as GBP.
func NewGBP(amount decimal.Decimal) GBP {
	return GBP{amount: amount.RoundBank(2)}
}

// AsDecimal exposes the underlying numeric value without the display glyph.
func (g GBP) AsDecimal() decimal.Decimal {
	return g.amount
}

// String renders the amount with the currency glyph, e.g. "£73.85".
func (g GBP) String() string {
	return "£" + g.amount.StringFixed(2)
}
