package ratesource

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Dir serves rate documents from every .xml file in a directory. It backs
// the RATES_DATA_DIR configuration override, letting deployments supply
// newer monthly tables without rebuilding the binary.
type Dir struct {
	Path string
}

// Documents reads all .xml files in the directory.
func (d Dir) Documents() ([][]byte, error) {
	entries, err := os.ReadDir(d.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rate data directory %s: %w", d.Path, err)
	}

	var docs [][]byte
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".xml") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(d.Path, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read rate document %s: %w", entry.Name(), err)
		}
		docs = append(docs, data)
	}
	return docs, nil
}
