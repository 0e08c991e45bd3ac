// Package ratesource provides the byte sources that feed rate documents to
// the converter: a bundle compiled into the binary and a directory on disk.
package ratesource

import (
	"embed"
	"fmt"
	"path"
)

//go:embed data/exrates-monthly-*.xml
var bundledFS embed.FS

// Embedded serves the monthly rate documents compiled into the binary.
type Embedded struct{}

// Documents returns the bundled rate documents.
func (Embedded) Documents() ([][]byte, error) {
	entries, err := bundledFS.ReadDir("data")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded rate data: %w", err)
	}

	docs := make([][]byte, 0, len(entries))
	for _, entry := range entries {
		data, err := bundledFS.ReadFile(path.Join("data", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded rate document %s: %w", entry.Name(), err)
		}
		docs = append(docs, data)
	}
	return docs, nil
}
