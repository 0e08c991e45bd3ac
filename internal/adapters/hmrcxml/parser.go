// Package hmrcxml decodes HMRC monthly exchange-rate XML documents into
// dated rate records.
package hmrcxml

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"hmrc-rates/internal/apperrors"
	"hmrc-rates/internal/core/domain"
)

const (
	// periodSeparator splits the Period attribute, e.g.
	// "01/Aug/2025 to 31/Aug/2025".
	periodSeparator = " to "

	// periodDateLayout is the day/abbreviated-month/year form HMRC uses.
	periodDateLayout = "02/Jan/2006"
)

// monthList mirrors the document structure: a root element carrying the
// Period attribute and one child element per currency.
type monthList struct {
	XMLName xml.Name    `xml:"exchangeRateMonthList"`
	Period  string      `xml:"Period,attr"`
	Entries []rateEntry `xml:"exchangeRate"`
}

type rateEntry struct {
	CurrencyCode string `xml:"currencyCode"`
	RateNew      string `xml:"rateNew"`
}

// Parse decodes one monthly rate document into a dated rate record.
// Currency codes are stored exactly as published; uppercasing happens at
// lookup time, not ingestion time.
func Parse(doc []byte) (domain.MonthlyRates, error) {
	var list monthList
	if err := xml.Unmarshal(doc, &list); err != nil {
		return domain.MonthlyRates{}, fmt.Errorf("%w: %v", apperrors.ErrXMLParse, err)
	}

	start, err := parsePeriodStart(list.Period)
	if err != nil {
		return domain.MonthlyRates{}, err
	}

	rates := make(map[string]decimal.Decimal, len(list.Entries))
	for _, entry := range list.Entries {
		code := strings.TrimSpace(entry.CurrencyCode)
		if code == "" {
			return domain.MonthlyRates{}, fmt.Errorf("%w: rate entry without a currencyCode node in period starting %s",
				apperrors.ErrCurrencyNotFound, start.Format(time.DateOnly))
		}

		raw := strings.TrimSpace(entry.RateNew)
		if raw == "" {
			return domain.MonthlyRates{}, fmt.Errorf("%w: entry for %q has no rateNew node", apperrors.ErrRateParse, code)
		}
		rate, err := decimal.NewFromString(raw)
		if err != nil {
			return domain.MonthlyRates{}, fmt.Errorf("%w: %q for currency %q", apperrors.ErrRateParse, raw, code)
		}
		rates[code] = rate
	}

	return domain.MonthlyRates{Start: start, Rates: rates}, nil
}

// parsePeriodStart validates the Period attribute and returns the period's
// start date. The period must span exactly one whole calendar month: start
// on day 1 and end on the last day of that same month.
func parsePeriodStart(period string) (time.Time, error) {
	if period == "" {
		return time.Time{}, fmt.Errorf("%w: document has no Period attribute", apperrors.ErrDateParse)
	}

	parts := strings.Split(period, periodSeparator)
	if len(parts) < 2 {
		return time.Time{}, fmt.Errorf("%w: invalid Period format: %s", apperrors.ErrDateParse, period)
	}

	start, err := time.Parse(periodDateLayout, strings.TrimSpace(parts[0]))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", apperrors.ErrDateParse, err)
	}
	end, err := time.Parse(periodDateLayout, strings.TrimSpace(parts[1]))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", apperrors.ErrDateParse, err)
	}

	if start.Day() != 1 {
		return time.Time{}, fmt.Errorf("%w: period start %s is not the first day of a month",
			apperrors.ErrDateParse, start.Format(periodDateLayout))
	}

	// Day zero of the following month is the last day of this one; the
	// December to January rollover falls out of time.Date normalization.
	lastDay := time.Date(start.Year(), start.Month()+1, 0, 0, 0, 0, 0, time.UTC)
	if !domain.Date(end).Equal(lastDay) {
		return time.Time{}, fmt.Errorf("%w: period end %s is not the last day of %s",
			apperrors.ErrDateParse, end.Format(periodDateLayout), start.Format("Jan 2006"))
	}

	return domain.Date(start), nil
}
