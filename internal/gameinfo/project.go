package gameinfo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

// Engine generations recognized by the packager.
const (
	Generation2000 = 2000
	Generation2003 = 2003
)

// executableSizeSplit separates 2000 runtimes from 2003 runtimes. 2000
// executables run around 730 KB and 2003 executables around 950 KB, so the
// split is drawn between them. The probe is a heuristic, not a signature.
const executableSizeSplit = 800000

// FullPackageFlag reports whether the game declares itself self-contained
// via FullPackageFlag=1 in RPG_RT.ini's [RPG_RT] section. Self-contained
// games ship their own copies of the runtime assets and need no RTP. Games
// without a project file or without the flag are not self-contained.
func FullPackageFlag(root string) (bool, error) {
	path := ProjectFilePath(root)
	if path == "" {
		return false, nil
	}
	cfg, err := ini.LoadSources(iniOptions(), path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	value := cfg.Section("rpg_rt").Key("fullpackageflag").String()
	return strings.TrimSpace(value) == "1", nil
}

// EngineGeneration reports whether a game targets RPG Maker 2000 or 2003,
// judged by the size of RPG_RT.exe. Games without an executable count as
// 2003 releases because the 2003 runtime package works for both generations.
func EngineGeneration(root string) int {
	fi, err := os.Stat(filepath.Join(root, ExecutableName))
	if err != nil || !fi.Mode().IsRegular() || fi.Size() > executableSizeSplit {
		return Generation2003
	}
	return Generation2000
}
