package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"hmrc-rates/internal/core/domain"
)

// ConverterSvc defines the conversion operations exposed to handlers.
type ConverterSvc interface {
	// Convert takes the combined textual form "VALUE CURRENCY" (e.g.
	// "100.00 USD") and returns the GBP amount at the rate in force on
	// the given date.
	Convert(ctx context.Context, value string, date time.Time) (domain.GBP, error)

	// ConvertAmount is the split form: the amount arrives already parsed
	// and the currency code separately.
	ConvertAmount(ctx context.Context, amount decimal.Decimal, currency string, date time.Time) (domain.GBP, error)

	// RateInForce returns the exchange rate applied for the currency on
	// the given date.
	RateInForce(ctx context.Context, currency string, date time.Time) (decimal.Decimal, error)

	// Periods lists the start dates of all loaded rate periods.
	Periods(ctx context.Context) []time.Time
}

// ConverterSvcFacade combines all converter-related service interfaces.
type ConverterSvcFacade interface {
	ConverterSvc
}

// ServiceContainer holds instances of all the application services and is
// the entry point for the handlers.
type ServiceContainer struct {
	Converter ConverterSvcFacade
}
