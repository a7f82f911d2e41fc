package fingerprint

import (
	"fmt"
	"hash/crc32"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Asset kinds tracked by the default-asset table. The names double as the
// labels printed in diagnostics.
const (
	KindAudio  = "audio"
	KindBanner = "banner"
	KindIcon   = "icon"
	KindInfo   = "info"
)

// defaultAssetFiles maps each asset kind to the placeholder file name that
// ships with ciapress.
var defaultAssetFiles = map[string]string{
	KindAudio:  "audio.wav",
	KindBanner: "banner.png",
	KindIcon:   "icon.png",
	KindInfo:   "gameinfo.cfg",
}

// File computes the fingerprint of the file at path. The file is streamed
// in chunks and folded into a running CRC32, so large assets never need to
// fit in memory. Repeated calls on an unmodified file yield identical output.
func File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	h := crc32.NewIEEE()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return fmt.Sprintf("%08X", h.Sum32()), nil
}

// Table maps asset kinds to fingerprints. A Table built by Defaults is
// computed once per invocation and treated as read-only afterwards.
type Table map[string]string

// Defaults computes the fingerprint table of the placeholder assets under
// dir. Every placeholder must be present; missing files are reported
// together so a broken installation is diagnosed in one pass.
func Defaults(dir string) (Table, error) {
	table := make(Table, len(defaultAssetFiles))
	var missing []string
	for kind, name := range defaultAssetFiles {
		fp, err := File(filepath.Join(dir, name))
		if err != nil {
			missing = append(missing, name)
			continue
		}
		table[kind] = fp
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("default assets missing from %s: %s", dir, strings.Join(missing, ", "))
	}
	return table, nil
}

// Matches compares the fingerprints of the supplied files against the
// default table and returns the kinds that are unmodified placeholders,
// in a stable order. Unreadable files surface as errors rather than being
// silently treated as customized.
func (t Table) Matches(files map[string]string) ([]string, error) {
	kinds := make([]string, 0, len(files))
	for kind := range files {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	var matched []string
	for _, kind := range kinds {
		fp, err := File(files[kind])
		if err != nil {
			return nil, err
		}
		if fp == t[kind] {
			matched = append(matched, kind)
		}
	}
	return matched, nil
}
