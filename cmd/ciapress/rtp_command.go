package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ciapress/internal/rtp"
)

func newRTPCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rtp",
		Short: "List known RTP releases and whether each is available locally",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			catalog, unknown, err := rtp.ScanCatalog(cfg.Paths.RTPDir)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(rtp.Versions()))
			for _, version := range rtp.Versions() {
				rows = append(rows, []string{
					version.ID,
					version.Description,
					yesNo(catalog[version.ID] != ""),
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Identifier", "Description", "Available"},
				rows,
			))
			if len(unknown) > 0 {
				fmt.Fprintf(out, "Unrecognized directories under %s: %s\n",
					cfg.Paths.RTPDir, strings.Join(unknown, ", "))
			}
			return nil
		},
	}
}
