package rtp

import (
	"fmt"
	"os"
	"path/filepath"
)

// Catalog maps known RTP identifiers to their local directories. It is
// built once per invocation and read-only afterwards.
type Catalog map[string]string

// ScanCatalog scans root for subdirectories named after known RTP releases
// and returns the resulting catalog plus the names of subdirectories it did
// not recognize. A missing root yields an empty catalog rather than an
// error; games that need an RTP are then skipped one by one with their own
// diagnostics.
func ScanCatalog(root string) (Catalog, []string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return Catalog{}, nil, nil
		}
		return nil, nil, fmt.Errorf("scan RTP directory %s: %w", root, err)
	}

	catalog := make(Catalog)
	var unknown []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if Known(name) {
			catalog[name] = filepath.Join(root, name)
			continue
		}
		unknown = append(unknown, name)
	}
	return catalog, unknown, nil
}
