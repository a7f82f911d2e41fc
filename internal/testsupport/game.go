package testsupport

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"
)

// Canonical contents for the placeholder assets that ship with ciapress.
// Game fixtures write different bytes unless a test opts into these, so the
// default-asset check only trips when a test asks for it. The placeholder
// gameinfo.cfg parses cleanly; an untouched copy is caught by fingerprint,
// not by validation.
const (
	DefaultAudioContent  = "placeholder audio\n"
	DefaultBannerContent = "placeholder banner\n"
	DefaultIconContent   = "placeholder icon\n"
	DefaultInfoContent   = "[metadata]\ncia_id = 000000\ntitle = Default title\n"
)

// WriteDefaultAssets writes the canonical placeholder assets into dir.
func WriteDefaultAssets(t testing.TB, dir string) {
	t.Helper()

	WriteFileString(t, filepath.Join(dir, "audio.wav"), DefaultAudioContent)
	WriteFileString(t, filepath.Join(dir, "banner.png"), DefaultBannerContent)
	WriteFileString(t, filepath.Join(dir, "icon.png"), DefaultIconContent)
	WriteFileString(t, filepath.Join(dir, "gameinfo.cfg"), DefaultInfoContent)
}

// GameOption adjusts a generated game directory fixture.
type GameOption func(*gameSpec)

type gameSpec struct {
	ciaID       string
	title       string
	author      string
	release     string
	rtp         string
	fullPackage bool
	exeSize     int
	omitted     map[string]bool
	contents    map[string]string
}

// WithCIAID overrides the cia_id written to gameinfo.cfg.
func WithCIAID(id string) GameOption {
	return func(s *gameSpec) { s.ciaID = id }
}

// WithTitle overrides the title written to gameinfo.cfg.
func WithTitle(title string) GameOption {
	return func(s *gameSpec) { s.title = title }
}

// WithAuthor sets the author in gameinfo.cfg. Fixtures omit the key by
// default.
func WithAuthor(author string) GameOption {
	return func(s *gameSpec) { s.author = author }
}

// WithRelease sets the release in gameinfo.cfg.
func WithRelease(release string) GameOption {
	return func(s *gameSpec) { s.release = release }
}

// WithRTP sets the rtp key in gameinfo.cfg.
func WithRTP(id string) GameOption {
	return func(s *gameSpec) { s.rtp = id }
}

// WithFullPackage marks the game as self-contained in RPG_RT.ini.
func WithFullPackage() GameOption {
	return func(s *gameSpec) { s.fullPackage = true }
}

// WithExecutableSize writes an RPG_RT.exe of the given size so engine
// generation can be inferred. Fixtures ship no executable by default.
func WithExecutableSize(size int) GameOption {
	return func(s *gameSpec) { s.exeSize = size }
}

// WithoutAsset omits the named 3DS asset file from the fixture.
func WithoutAsset(name string) GameOption {
	return func(s *gameSpec) { s.omitted[name] = true }
}

// WithAssetContent overrides the bytes of the named 3DS asset file. Pass a
// Default*Content constant to simulate an asset the packer never customized.
func WithAssetContent(name, content string) GameOption {
	return func(s *gameSpec) { s.contents[name] = content }
}

// WriteGame creates a ready-to-build game directory fixture at dir: an
// RPG_RT.ini project file plus a 3DS asset directory whose contents differ
// from the shipped placeholders.
func WriteGame(t testing.TB, dir string, opts ...GameOption) {
	t.Helper()

	spec := &gameSpec{
		ciaID:    "A1B2C3",
		title:    "Test Game",
		omitted:  map[string]bool{},
		contents: map[string]string{},
	}
	for _, opt := range opts {
		opt(spec)
	}

	var ini strings.Builder
	ini.WriteString("[RPG_RT]\n")
	fmt.Fprintf(&ini, "GameTitle=%s\n", spec.title)
	if spec.fullPackage {
		ini.WriteString("FullPackageFlag=1\n")
	}
	WriteFileString(t, filepath.Join(dir, "RPG_RT.ini"), ini.String())

	if spec.exeSize > 0 {
		WriteFile(t, filepath.Join(dir, "RPG_RT.exe"), spec.exeSize)
	}

	var info strings.Builder
	info.WriteString("[metadata]\n")
	fmt.Fprintf(&info, "cia_id = %s\n", spec.ciaID)
	fmt.Fprintf(&info, "title = %s\n", spec.title)
	if spec.author != "" {
		fmt.Fprintf(&info, "author = %s\n", spec.author)
	}
	if spec.release != "" {
		fmt.Fprintf(&info, "release = %s\n", spec.release)
	}
	if spec.rtp != "" {
		fmt.Fprintf(&info, "rtp = %s\n", spec.rtp)
	}

	assets := map[string]string{
		"audio.wav":    "custom audio\n",
		"banner.png":   "custom banner\n",
		"icon.png":     "custom icon\n",
		"gameinfo.cfg": info.String(),
	}
	for name, content := range spec.contents {
		assets[name] = content
	}
	for name, content := range assets {
		if spec.omitted[name] {
			continue
		}
		WriteFileString(t, filepath.Join(dir, "3DS", name), content)
	}
}
