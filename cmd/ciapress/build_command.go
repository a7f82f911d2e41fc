package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"ciapress/internal/batch"
	"ciapress/internal/cia"
	"ciapress/internal/config"
	"ciapress/internal/fingerprint"
	"ciapress/internal/preflight"
	"ciapress/internal/rtp"
	"ciapress/internal/staging"
)

func newBuildCommand(ctx *commandContext) *cobra.Command {
	var (
		elfFlag    string
		rsfFlag    string
		rtpDirFlag string
		outFlag    string
		noRTPFlag  bool
	)

	cmd := &cobra.Command{
		Use:   "build <directory>",
		Short: "Build CIA archives from a game directory or a directory of games",
		Long: `Build packages RPG Maker 2000/2003 games into installable 3DS CIA archives.

The argument is either a single game directory or a directory containing
game directories; the mode is detected from the directory contents. Each
usable game is staged together with the RTP it asks for and pressed into
<out>/<Title-Slug>.cia.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			overrides := []struct {
				value  string
				target *string
			}{
				{elfFlag, &cfg.Toolchain.ELF},
				{rsfFlag, &cfg.Toolchain.RSFTemplate},
				{rtpDirFlag, &cfg.Paths.RTPDir},
				{outFlag, &cfg.Paths.OutDir},
			}
			for _, o := range overrides {
				if o.value == "" {
					continue
				}
				expanded, err := config.ExpandPath(o.value)
				if err != nil {
					return err
				}
				*o.target = expanded
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return err
			}
			if err := preflight.Verify(cfg); err != nil {
				return err
			}

			logger, err := buildLogger(cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			catalog, unknown, err := rtp.ScanCatalog(cfg.Paths.RTPDir)
			if err != nil {
				return err
			}
			if info, statErr := os.Stat(cfg.Paths.RTPDir); statErr != nil || !info.IsDir() {
				warnf(out, "could not find RTP directory: %s", cfg.Paths.RTPDir)
			} else if len(catalog) == 0 {
				warnf(out, "could not find any RTPs: %s", cfg.Paths.RTPDir)
			}
			for _, name := range unknown {
				warnf(out, "not a known RTP (ignoring): %s", filepath.Join(cfg.Paths.RTPDir, name))
			}

			defaults, err := fingerprint.Defaults(cfg.DefaultAssetsDir())
			if err != nil {
				return err
			}

			root, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}

			stager := staging.NewManager(cfg.Paths.ScratchDir, logger)
			if err := stager.Acquire(); err != nil {
				return err
			}
			defer stager.Release()
			// Stale trees from an aborted run must not leak into a romfs image.
			stager.CleanAll()

			builder := cia.NewBuilder(cia.Toolchain{
				Bannertool:  cfg.Toolchain.Bannertool,
				ThreeDSTool: cfg.Toolchain.ThreeDSTool,
				Makerom:     cfg.Toolchain.Makerom,
			}, logger)

			opts := []batch.RunnerOption{batch.WithOutput(out)}
			if noRTPFlag {
				opts = append(opts, batch.WithoutRTP())
			}
			runner := batch.NewRunner(cfg, catalog, defaults, stager, builder, logger, opts...)

			summary, err := runner.Run(cmd.Context(), root)
			if err != nil {
				return err
			}
			if summary.Single && summary.Built == 0 {
				return fmt.Errorf("no archive was built for %s", root)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&elfFlag, "elf", "", "EasyRPG Player ELF path (overrides configuration)")
	cmd.Flags().StringVar(&rsfFlag, "rsf", "", "ROM spec template path (overrides configuration)")
	cmd.Flags().StringVar(&rtpDirFlag, "rtp-dir", "", "RTP catalog directory (overrides configuration)")
	cmd.Flags().StringVar(&outFlag, "out", "", "Output directory for built archives (overrides configuration)")
	cmd.Flags().BoolVar(&noRTPFlag, "no-rtp", false, "Skip RTP staging even for games that request one")

	return cmd
}
