package apperrors

import "errors"

// ErrInvalidInputFormat indicates that a combined "VALUE CURRENCY" input did
// not split into exactly two tokens.
var ErrInvalidInputFormat = errors.New("invalid input format, expected 'VALUE CURRENCY'")

// ErrValueParse indicates that an amount token is not a valid decimal number.
var ErrValueParse = errors.New("failed to parse value")

// ErrCurrencyNotFound indicates that the requested currency is absent from
// the rate table entry selected for the requested date.
var ErrCurrencyNotFound = errors.New("currency not found")

// ErrDateOutOfRange indicates that no rate table entry with a start date at
// or before the requested date exists.
var ErrDateOutOfRange = errors.New("no exchange rate data available for date")

// ErrXMLParse indicates that a rate document is not well-formed markup.
var ErrXMLParse = errors.New("failed to parse XML data")

// ErrDateParse indicates a missing or malformed Period attribute, or a
// period failing the start-is-1st/end-is-last-day checks.
var ErrDateParse = errors.New("failed to parse date")

// ErrRateParse indicates that a rate text node is not a valid decimal number.
var ErrRateParse = errors.New("failed to parse rate")
