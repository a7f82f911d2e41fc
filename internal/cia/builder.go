package cia

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"ciapress/internal/gameinfo"
	"ciapress/internal/logging"
	"ciapress/internal/services"
)

// uniqueIDToken is the placeholder the RSF template carries for the CIA
// title ID.
const uniqueIDToken = "{{UNIQUE_ID}}"

// Toolchain names the external binaries that assemble an archive.
type Toolchain struct {
	Bannertool  string
	ThreeDSTool string
	Makerom     string
}

// StepError reports which build step failed. Steps are numbered from 1 in
// execution order.
type StepError struct {
	Step int
	Name string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Step, e.Name, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Request describes one archive build.
type Request struct {
	Metadata    gameinfo.Metadata
	StagedDir   string // assembled game tree, becomes the romfs
	Banner      string
	Audio       string
	Icon        string
	ELF         string
	RSFTemplate string
	ScratchDir  string // receives the intermediate artifacts
	OutDir      string
	Slug        string // output file stem
}

// Option configures the builder.
type Option func(*Builder)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec services.Executor) Option {
	return func(b *Builder) {
		if exec != nil {
			b.exec = exec
		}
	}
}

// Builder wraps the bannertool/3dstool/makerom toolchain.
type Builder struct {
	tools  Toolchain
	logger *slog.Logger
	exec   services.Executor
}

// NewBuilder constructs a builder for the given toolchain. Binary paths
// must be non-empty; configuration validation guarantees that.
func NewBuilder(tools Toolchain, logger *slog.Logger, opts ...Option) *Builder {
	b := &Builder{
		tools:  tools,
		logger: logging.NewComponentLogger(logger, "cia"),
		exec:   services.CommandExecutor{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build runs the archive sequence for one staged game and returns the path
// of the finished .cia file. On failure the returned error is a *StepError
// naming the step that broke; intermediate artifacts are left in the
// scratch directory for the caller's cleanup pass.
func (b *Builder) Build(ctx context.Context, req Request) (string, error) {
	ctx = services.WithStage(ctx, "press")
	if err := os.MkdirAll(req.OutDir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	bannerBin := filepath.Join(req.ScratchDir, "banner.bin")
	iconBin := filepath.Join(req.ScratchDir, "icon.bin")
	romfsBin := filepath.Join(req.ScratchDir, "romfs.bin")
	rsfPath := filepath.Join(req.ScratchDir, "spec.rsf")
	target := filepath.Join(req.OutDir, req.Slug+".cia")

	steps := []struct {
		name string
		run  func() error
	}{
		{"makebanner", func() error {
			return b.run(ctx, b.tools.Bannertool,
				"makebanner", "-i", req.Banner, "-a", req.Audio, "-o", bannerBin)
		}},
		{"makesmdh", func() error {
			return b.run(ctx, b.tools.Bannertool,
				"makesmdh", "-s", req.Metadata.Title, "-l", req.Metadata.Title,
				"-p", req.Metadata.Author, "-i", req.Icon, "-o", iconBin)
		}},
		{"3dstool", func() error {
			return b.run(ctx, b.tools.ThreeDSTool,
				"-cvtf", "romfs", romfsBin, "--romfs-dir", req.StagedDir)
		}},
		{"rsf", func() error {
			return writeSpec(req.RSFTemplate, rsfPath, req.Metadata.ID)
		}},
		{"makerom", func() error {
			return b.run(ctx, b.tools.Makerom,
				"-f", "cia", "-o", target, "-elf", req.ELF, "-rsf", rsfPath,
				"-icon", iconBin, "-banner", bannerBin, "-exefslogo",
				"-target", "t", "-romfs", romfsBin)
		}},
	}

	for i, step := range steps {
		if err := step.run(); err != nil {
			return "", &StepError{Step: i + 1, Name: step.name, Err: err}
		}
	}
	return target, nil
}

func (b *Builder) run(ctx context.Context, binary string, args ...string) error {
	logger := logging.WithContext(ctx, b.logger)
	logger.Debug("running toolchain step",
		logging.String("binary", binary),
		logging.String("args", strings.Join(args, " ")),
	)
	tool := filepath.Base(binary)
	return b.exec.Run(ctx, binary, args, func(line string) {
		logger.Debug(line, logging.String("tool", tool))
	})
}

// writeSpec instantiates the RSF template with the game's title ID. Every
// CIA needs a unique ID or installs would overwrite each other.
func writeSpec(templatePath, destPath, id string) error {
	raw, err := os.ReadFile(templatePath)
	if err != nil {
		return fmt.Errorf("read RSF template: %w", err)
	}
	content := strings.ReplaceAll(string(raw), uniqueIDToken, id)
	if err := os.WriteFile(destPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write RSF: %w", err)
	}
	return nil
}
