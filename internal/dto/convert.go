package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"hmrc-rates/internal/core/domain"
)

// ConvertRequest defines the structure for a conversion request. Callers
// supply either the combined textual form in Value ("100.00 USD") or the
// split form in Amount and Currency.
type ConvertRequest struct {
	Value    string           `json:"value"`
	Amount   *decimal.Decimal `json:"amount"`
	Currency string           `json:"currency"`
	Date     string           `json:"date" binding:"required"` // 2006-01-02
}

// ConvertResponse defines the structure for API responses containing a
// converted amount.
type ConvertResponse struct {
	GBP      string          `json:"gbp"`    // display form, e.g. "£73.85"
	Amount   decimal.Decimal `json:"amount"` // bare decimal value
	Currency string          `json:"currency"`
	Date     string          `json:"date"`
}

// ToConvertResponse converts a domain.GBP to a ConvertResponse DTO.
func ToConvertResponse(result domain.GBP, currency string, date time.Time) ConvertResponse {
	return ConvertResponse{
		GBP:      result.String(),
		Amount:   result.AsDecimal(),
		Currency: currency,
		Date:     date.Format(time.DateOnly),
	}
}

// RateResponse defines the structure for API responses containing the rate
// in force for a currency on a date.
type RateResponse struct {
	Currency string          `json:"currency"`
	Rate     decimal.Decimal `json:"rate"`
	Date     string          `json:"date"`
}

// PeriodsResponse lists the start dates of the loaded rate periods.
type PeriodsResponse struct {
	Periods []string `json:"periods"`
}

// ToPeriodsResponse converts period start dates to a PeriodsResponse DTO.
func ToPeriodsResponse(starts []time.Time) PeriodsResponse {
	periods := make([]string, len(starts))
	for i, start := range starts {
		periods[i] = start.Format(time.DateOnly)
	}
	return PeriodsResponse{Periods: periods}
}
