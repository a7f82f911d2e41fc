package batch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"ciapress/internal/cia"
	"ciapress/internal/config"
	"ciapress/internal/fingerprint"
	"ciapress/internal/gameinfo"
	"ciapress/internal/logging"
	"ciapress/internal/rtp"
	"ciapress/internal/staging"
	"ciapress/internal/textutil"
)

// Candidate is one directory the batch considers.
type Candidate struct {
	Path      string // game directory
	Name      string // display name, the directory's base name
	BatchRoot string // batch root for relative reporting, "" in single-game mode
}

// Result is the outcome of one build attempt. Exactly one of Success and
// Skipped may be set; both false means the attempt failed.
type Result struct {
	Success bool
	Skipped bool
	Name    string // display name
	Dir     string // game path as reported
	Target  string // archive path as reported
	ID      string
	Title   string
	Author  string
	Release string
}

// Summary aggregates a whole invocation.
type Summary struct {
	Results []Result
	Built   int
	Single  bool // root was itself a game, not a batch directory
}

// Runner drives builds. All collaborators are constructed once up front and
// shared read-only across attempts.
type Runner struct {
	cfg      *config.Config
	catalog  rtp.Catalog
	defaults fingerprint.Table
	stager   *staging.Manager
	builder  *cia.Builder
	logger   *slog.Logger
	out      io.Writer
	noRTP    bool
}

// RunnerOption adjusts optional runner behavior.
type RunnerOption func(*Runner)

// WithOutput redirects the user-facing report stream (default os.Stdout).
func WithOutput(w io.Writer) RunnerOption {
	return func(r *Runner) {
		if w != nil {
			r.out = w
		}
	}
}

// WithoutRTP disables RTP bundling for every game in the invocation.
func WithoutRTP() RunnerOption {
	return func(r *Runner) {
		r.noRTP = true
	}
}

// NewRunner constructs a runner over fully initialized collaborators.
func NewRunner(cfg *config.Config, catalog rtp.Catalog, defaults fingerprint.Table, stager *staging.Manager, builder *cia.Builder, logger *slog.Logger, opts ...RunnerOption) *Runner {
	r := &Runner{
		cfg:      cfg,
		catalog:  catalog,
		defaults: defaults,
		stager:   stager,
		builder:  builder,
		logger:   logging.NewComponentLogger(logger, "batch"),
		out:      os.Stdout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run builds either a single game or every game under root. When root is
// itself a game it becomes the only candidate; otherwise each immediate
// subdirectory is attempted independently and a final count is reported.
// The error covers invocation-level problems only, never per-game failures.
func (r *Runner) Run(ctx context.Context, root string) (Summary, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		r.warn("could not find game directory: %s", root)
		return Summary{}, fmt.Errorf("no such directory: %s", root)
	}

	if gameinfo.IsGameRoot(root) {
		res := r.RunOne(ctx, Candidate{Path: root, Name: filepath.Base(root)})
		summary := Summary{Single: true, Results: []Result{res}}
		if res.Success {
			summary.Built = 1
		}
		return summary, nil
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return Summary{}, fmt.Errorf("read batch directory: %w", err)
	}

	var summary Summary
	for _, entry := range entries {
		path := filepath.Join(root, entry.Name())
		// os.Stat follows symlinked game directories, entry.IsDir would not
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			continue
		}
		res := r.RunOne(ctx, Candidate{Path: path, Name: entry.Name(), BatchRoot: root})
		summary.Results = append(summary.Results, res)
		if res.Success {
			summary.Built++
		}
	}

	r.report("Built %d CIA file%s in total.", summary.Built, textutil.Ternary(summary.Built == 1, "", "s"))
	return summary, nil
}

func (r *Runner) report(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

func (r *Runner) warn(format string, args ...any) {
	fmt.Fprintf(r.out, "ciapress: Warning: "+format+"\n", args...)
}

// relDir renders target relative to the batch root for reporting, prefixed
// with the root's base name so a user can tell which batch entry is meant.
// Without a root the target is returned unchanged.
func relDir(target, base string) string {
	if base == "" {
		return target
	}
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return target
	}
	return filepath.Join(filepath.Base(base), rel)
}
