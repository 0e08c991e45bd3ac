package repositories

// RateDocumentSource supplies raw monthly rate XML documents at converter
// construction time. Where the bytes come from (embedded bundle, directory
// on disk) is irrelevant to the converter; it parses whatever it is handed.
type RateDocumentSource interface {
	// Documents returns every available rate document. Order does not
	// matter; each document carries its own reporting period.
	Documents() ([][]byte, error)
}
