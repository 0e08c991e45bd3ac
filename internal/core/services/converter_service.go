package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"hmrc-rates/internal/adapters/hmrcxml"
	"hmrc-rates/internal/adapters/ratesource"
	"hmrc-rates/internal/apperrors"
	"hmrc-rates/internal/core/domain"
	portsrepo "hmrc-rates/internal/core/ports/repositories"
	"hmrc-rates/internal/core/ratetable"
)

// ConverterService converts foreign-currency amounts into GBP using HMRC
// monthly average rate tables. The table is built once at construction and
// read-only afterwards, so a single instance may serve concurrent requests.
type ConverterService struct {
	table *ratetable.Table
}

// NewConverterService builds a converter from the rate documents bundled
// into the binary.
func NewConverterService() (*ConverterService, error) {
	return NewConverterServiceFromSource(ratesource.Embedded{})
}

// NewConverterServiceFromSource builds a converter from every document the
// source supplies. Construction is atomic: any document failing to parse
// fails the whole construction.
func NewConverterServiceFromSource(source portsrepo.RateDocumentSource) (*ConverterService, error) {
	docs, err := source.Documents()
	if err != nil {
		return nil, fmt.Errorf("failed to load rate documents: %w", err)
	}

	s := NewEmptyConverterService()
	for _, doc := range docs {
		if err := s.LoadDocument(doc); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// NewConverterServiceFromXML builds a converter from a single caller-supplied
// rate document.
func NewConverterServiceFromXML(doc []byte) (*ConverterService, error) {
	s := NewEmptyConverterService()
	if err := s.LoadDocument(doc); err != nil {
		return nil, err
	}
	return s, nil
}

// NewEmptyConverterService returns a converter with no rate data. Documents
// are added with LoadDocument before the service is put into use.
func NewEmptyConverterService() *ConverterService {
	return &ConverterService{table: ratetable.New()}
}

// LoadDocument parses one monthly rate document and merges it into the
// table. A document whose period start date is already present replaces the
// prior entry for that date. Loading is part of construction and must not
// run concurrently with conversions.
func (s *ConverterService) LoadDocument(doc []byte) error {
	month, err := hmrcxml.Parse(doc)
	if err != nil {
		return err
	}
	s.table.Insert(month)
	return nil
}

// Convert handles the combined textual form "VALUE CURRENCY", e.g.
// "100.00 USD". Exactly two whitespace-delimited tokens are required.
func (s *ConverterService) Convert(ctx context.Context, value string, date time.Time) (domain.GBP, error) {
	parts := strings.Fields(value)
	if len(parts) != 2 {
		return domain.GBP{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidInputFormat, value)
	}

	amount, err := decimal.NewFromString(parts[0])
	if err != nil {
		return domain.GBP{}, fmt.Errorf("%w: %q", apperrors.ErrValueParse, parts[0])
	}

	return s.ConvertAmount(ctx, amount, parts[1], date)
}

// ConvertAmount handles the split form: amount already parsed, currency
// supplied separately.
func (s *ConverterService) ConvertAmount(ctx context.Context, amount decimal.Decimal, currency string, date time.Time) (domain.GBP, error) {
	rate, err := s.RateInForce(ctx, currency, date)
	if err != nil {
		return domain.GBP{}, err
	}
	return domain.NewGBP(amount.Div(rate)), nil
}

// RateInForce returns the rate for the currency from the most recent period
// whose start date does not exceed the given date. Periods stay in force
// until superseded; only dates before the earliest period are out of range.
func (s *ConverterService) RateInForce(ctx context.Context, currency string, date time.Time) (decimal.Decimal, error) {
	month, ok := s.table.InForce(date)
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: %s", apperrors.ErrDateOutOfRange, domain.Date(date).Format(time.DateOnly))
	}

	code := strings.ToUpper(currency)
	rate, ok := month.Rates[code]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: %q for date %s", apperrors.ErrCurrencyNotFound, code, domain.Date(date).Format(time.DateOnly))
	}
	return rate, nil
}

// Periods lists the start dates of all loaded rate periods in ascending
// order.
func (s *ConverterService) Periods(ctx context.Context) []time.Time {
	return s.table.Periods()
}
