package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"ciapress/internal/preflight"
	"ciapress/internal/staging"
	"ciapress/internal/textutil"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check directories, build inputs, and toolchain binaries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			for _, line := range renderSectionHeader("Prerequisites", colorize) {
				fmt.Fprintln(out, line)
			}
			failed := 0
			for _, result := range preflight.RunAll(cfg) {
				kind := statusOK
				if !result.Passed {
					kind = statusError
					failed++
				}
				fmt.Fprintln(out, renderStatusLine(result.Name, kind, result.Detail, colorize))
			}

			fmt.Fprintln(out)
			for _, line := range renderSectionHeader("Scratch Leftovers", colorize) {
				fmt.Fprintln(out, line)
			}
			leftovers, err := staging.ListDirectories(cfg.Paths.ScratchDir)
			if err != nil {
				return err
			}
			if len(leftovers) == 0 {
				fmt.Fprintln(out, renderStatusLine("Scratch directory", statusOK, "clean", colorize))
			}
			for _, dir := range leftovers {
				detail := fmt.Sprintf("%s, last used %s ago", formatBytes(dir.Size), formatDuration(time.Since(dir.ModTime)))
				fmt.Fprintln(out, renderStatusLine(dir.Name, statusWarn, detail, colorize))
			}

			if failed > 0 {
				return fmt.Errorf("%d prerequisite check%s failed",
					failed, textutil.Ternary(failed == 1, "", "s"))
			}
			return nil
		},
	}
}
