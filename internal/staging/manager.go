package staging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"ciapress/internal/fileutil"
	"ciapress/internal/logging"
)

// LockFileName is the flock target kept at the scratch root. It is the one
// entry cleanup leaves behind.
const LockFileName = ".ciapress.lock"

// Manager owns the scratch root where games are assembled before packaging.
// A file lock on the root keeps concurrent invocations from tearing down
// each other's trees.
type Manager struct {
	root   string
	logger *slog.Logger
	lock   *flock.Flock
}

// NewManager returns a manager rooted at root. Acquire must succeed before
// any staging or cleanup happens.
func NewManager(root string, logger *slog.Logger) *Manager {
	return &Manager{
		root:   root,
		logger: logging.NewComponentLogger(logger, "staging"),
		lock:   flock.New(filepath.Join(root, LockFileName)),
	}
}

// Root returns the scratch root. Toolchain steps write their intermediate
// artifacts directly under it.
func (m *Manager) Root() string { return m.root }

// Acquire takes the scratch lock, creating the root first if needed.
func (m *Manager) Acquire() error {
	if err := os.MkdirAll(m.root, 0o755); err != nil {
		return fmt.Errorf("create scratch directory: %w", err)
	}
	ok, err := m.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire scratch lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("another ciapress invocation is using %s", m.root)
	}
	return nil
}

// Release drops the scratch lock.
func (m *Manager) Release() {
	if err := m.lock.Unlock(); err != nil {
		m.logger.Warn("failed to release scratch lock", logging.Error(err))
	}
}

// Stage assembles one game's working tree under the scratch root: the RTP
// first when one was resolved, then the game itself so its own files win
// over the RTP's. The returned path becomes the romfs source directory.
func (m *Manager) Stage(slug, rtpDir, gameDir string) (string, error) {
	dest := filepath.Join(m.root, slug)
	if rtpDir != "" {
		if err := fileutil.CopyTree(rtpDir, dest); err != nil {
			return "", fmt.Errorf("stage RTP: %w", err)
		}
	}
	if err := fileutil.CopyTree(gameDir, dest); err != nil {
		return "", fmt.Errorf("stage game: %w", err)
	}
	return dest, nil
}
