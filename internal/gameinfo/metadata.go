package gameinfo

import (
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

// UnknownAuthor is substituted when a game declares no author.
const UnknownAuthor = "Unknown author"

// ciaIDLength is the fixed length of a CIA title ID in hex digits.
const ciaIDLength = 6

// Metadata is the packaging information a game declares in gameinfo.cfg.
type Metadata struct {
	ID      string // CIA title ID, six hex digits
	Title   string
	Author  string
	Release string // optional free-form release date
	RTP     string // optional RTP identifier the game was authored against
}

// ValidationError collects every problem found in a gameinfo.cfg file so a
// single report covers the whole file.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "gameinfo.cfg file is invalid or missing information: " + strings.Join(e.Problems, ", ")
}

// LoadMetadata parses the [metadata] section of a game's 3DS/gameinfo.cfg.
// Section and key names match case-insensitively and values are trimmed. A
// blank author becomes UnknownAuthor. When validation fails the returned
// error is a *ValidationError listing every problem, and the partially
// populated Metadata is still returned for reporting.
func LoadMetadata(root string) (Metadata, error) {
	path := filepath.Join(AssetsDir(root), "gameinfo.cfg")
	cfg, err := ini.LoadSources(iniOptions(), path)
	if err != nil {
		return Metadata{}, fmt.Errorf("read %s: %w", path, err)
	}

	sec := cfg.Section("metadata")
	meta := Metadata{
		ID:      strings.TrimSpace(sec.Key("cia_id").String()),
		Title:   strings.TrimSpace(sec.Key("title").String()),
		Author:  strings.TrimSpace(sec.Key("author").String()),
		Release: strings.TrimSpace(sec.Key("release").String()),
		RTP:     strings.TrimSpace(sec.Key("rtp").String()),
	}
	if meta.Author == "" {
		meta.Author = UnknownAuthor
	}

	var problems []string
	if !isHex(meta.ID) {
		problems = append(problems, "invalid ID (must be hexadecimal)")
	}
	if len(meta.ID) != ciaIDLength {
		problems = append(problems, fmt.Sprintf("invalid ID length (must be %d characters)", ciaIDLength))
	}
	if meta.Title == "" {
		problems = append(problems, "invalid title")
	}
	if len(problems) > 0 {
		return meta, &ValidationError{Problems: problems}
	}
	return meta, nil
}

// iniOptions configures parsing for the loosely formatted files old RPG
// Maker tooling produces. Inline comment markers stay part of the value,
// matching how the runtime itself reads these files.
func iniOptions() ini.LoadOptions {
	return ini.LoadOptions{
		Insensitive:         true,
		IgnoreInlineComment: true,
	}
}

func isHex(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
