package staging

import (
	"os"
	"path/filepath"
	"testing"

	"ciapress/internal/logging"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestStageOverlaysGameOverRTP(t *testing.T) {
	rtpDir := t.TempDir()
	gameDir := t.TempDir()
	writeTree(t, rtpDir, map[string]string{
		"Sound/cursor.wav":  "rtp",
		"Music/battle.mid":  "rtp",
		"CharSet/actor.png": "rtp",
	})
	writeTree(t, gameDir, map[string]string{
		"RPG_RT.ini":       "[RPG_RT]\n",
		"RPG_RT.ldb":       "database",
		"Sound/cursor.wav": "custom",
	})

	m := NewManager(t.TempDir(), logging.NewNop())
	staged, err := m.Stage("my-game", rtpDir, gameDir)
	if err != nil {
		t.Fatalf("Stage: %v", err)
	}
	if staged != filepath.Join(m.Root(), "my-game") {
		t.Fatalf("staged path = %q", staged)
	}

	for rel, want := range map[string]string{
		"Sound/cursor.wav":  "custom",
		"Music/battle.mid":  "rtp",
		"CharSet/actor.png": "rtp",
		"RPG_RT.ldb":        "database",
	} {
		got, err := os.ReadFile(filepath.Join(staged, rel))
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != want {
			t.Fatalf("%s: got %q, want %q", rel, got, want)
		}
	}
}

func TestStageWithoutRTP(t *testing.T) {
	gameDir := t.TempDir()
	writeTree(t, gameDir, map[string]string{"RPG_RT.ini": "[RPG_RT]\nFullPackageFlag=1\n"})

	m := NewManager(t.TempDir(), logging.NewNop())
	staged, err := m.Stage("solo", "", gameDir)
	if err != nil {
		t.Fatalf("Stage: %v", err)
	}

	entries, err := os.ReadDir(staged)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "RPG_RT.ini" {
		t.Fatalf("staged entries = %v", entries)
	}
}

func TestCleanAllPreservesLock(t *testing.T) {
	root := t.TempDir()
	m := NewManager(root, logging.NewNop())
	if err := m.Acquire(); err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	defer m.Release()

	writeTree(t, root, map[string]string{
		"leftover/banner.bin": "x",
		"romfs.bin":           "x",
	})

	result := m.CleanAll()
	if len(result.Errors) != 0 {
		t.Fatalf("cleanup errors: %v", result.Errors)
	}
	if len(result.Removed) != 2 {
		t.Fatalf("removed = %v, want 2 entries", result.Removed)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != LockFileName {
		t.Fatalf("root entries after cleanup = %v", entries)
	}
}

func TestCleanAllMissingRoot(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "absent"), logging.NewNop())
	result := m.CleanAll()
	if len(result.Removed) != 0 || len(result.Errors) != 0 {
		t.Fatalf("result = %+v", result)
	}
}

func TestAcquireRejectsSecondInvocation(t *testing.T) {
	root := t.TempDir()

	first := NewManager(root, logging.NewNop())
	if err := first.Acquire(); err != nil {
		t.Fatalf("first Acquire: %v", err)
	}
	defer first.Release()

	second := NewManager(root, logging.NewNop())
	if err := second.Acquire(); err == nil {
		second.Release()
		t.Fatal("second Acquire succeeded while lock held")
	}
}

func TestListDirectories(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"stale-game/data.bin": "12345",
		LockFileName:          "",
	})

	dirs, err := ListDirectories(root)
	if err != nil {
		t.Fatalf("ListDirectories: %v", err)
	}
	if len(dirs) != 1 {
		t.Fatalf("dirs = %v, want 1 entry", dirs)
	}
	info := dirs[0]
	if info.Name != "stale-game" {
		t.Errorf("Name = %q", info.Name)
	}
	if info.Path != filepath.Join(root, "stale-game") {
		t.Errorf("Path = %q", info.Path)
	}
	if info.Size != 5 {
		t.Errorf("Size = %d, want 5", info.Size)
	}
	if info.ModTime.IsZero() {
		t.Error("ModTime should not be zero")
	}
}

func TestListDirectoriesInvalidPaths(t *testing.T) {
	for _, path := range []string{"", "   ", filepath.Join(os.TempDir(), "ciapress-nonexistent-12345")} {
		dirs, err := ListDirectories(path)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", path, err)
		}
		if dirs != nil {
			t.Errorf("expected nil for path %q, got %v", path, dirs)
		}
	}
}
