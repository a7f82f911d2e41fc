package gameinfo

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// ProjectFileName is the RPG Maker runtime project file whose presence
	// marks a directory as a game.
	ProjectFileName = "RPG_RT.ini"

	// ExecutableName is the RPG Maker runtime binary probed to tell 2000
	// games from 2003 games.
	ExecutableName = "RPG_RT.exe"

	// AssetsDirName is the subdirectory that holds the 3DS packaging assets.
	AssetsDirName = "3DS"
)

// requiredAssets lists the files every game must provide under 3DS/, in the
// order missing ones are reported.
var requiredAssets = []string{"audio.wav", "banner.png", "icon.png", "gameinfo.cfg"}

// IsGameRoot reports whether dir contains an RPG Maker 2000/2003 game.
func IsGameRoot(dir string) bool {
	return ProjectFilePath(dir) != ""
}

// ProjectFilePath returns the path of the RPG_RT.ini project file inside
// dir, matching the name case-insensitively, or "" when the directory holds
// none. The exact-case name is tried first so the common layout avoids a
// directory scan.
func ProjectFilePath(dir string) string {
	exact := filepath.Join(dir, ProjectFileName)
	if fi, err := os.Stat(exact); err == nil && fi.Mode().IsRegular() {
		return exact
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(entry.Name(), ProjectFileName) {
			return filepath.Join(dir, entry.Name())
		}
	}
	return ""
}

// AssetsDir returns the 3DS asset directory for a game root.
func AssetsDir(root string) string {
	return filepath.Join(root, AssetsDirName)
}

// AssetBundle holds the resolved paths of the four required 3DS assets.
// Paths of missing assets are empty.
type AssetBundle struct {
	Audio  string
	Banner string
	Icon   string
	Info   string
}

// CheckAssets looks for the required 3DS assets under root and returns their
// paths along with the names of every asset that is absent, in reporting
// order. A complete bundle has an empty missing list.
func CheckAssets(root string) (AssetBundle, []string) {
	base := AssetsDir(root)

	var missing []string
	present := make(map[string]string, len(requiredAssets))
	for _, name := range requiredAssets {
		path := filepath.Join(base, name)
		fi, err := os.Stat(path)
		if err != nil || !fi.Mode().IsRegular() {
			missing = append(missing, name)
			continue
		}
		present[name] = path
	}

	bundle := AssetBundle{
		Audio:  present["audio.wav"],
		Banner: present["banner.png"],
		Icon:   present["icon.png"],
		Info:   present["gameinfo.cfg"],
	}
	return bundle, missing
}

// RequiredAssetCount is the number of assets a complete 3DS bundle carries.
// A game missing all of them is treated as never prepared for packaging
// rather than broken.
const RequiredAssetCount = 4
