package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"goprotransfer/internal/config"
	"goprotransfer/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "check [input-dir] [output-dir]",
		Short: "Verify that exiftool and the working directories are usable",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			var inputDir, outputDir string
			if len(args) > 0 {
				if inputDir, err = config.ExpandPath(args[0]); err != nil {
					return fmt.Errorf("resolve input dir: %w", err)
				}
			}
			if len(args) > 1 {
				if outputDir, err = config.ExpandPath(args[1]); err != nil {
					return fmt.Errorf("resolve output dir: %w", err)
				}
			}

			results := preflight.RunAll(cmd.Context(), cfg, inputDir, outputDir)
			if jsonOutput {
				if err := writeJSON(cmd, results); err != nil {
					return err
				}
			} else {
				rows := make([][]string, 0, len(results))
				for _, r := range results {
					rows = append(rows, []string{r.Name, passLabel(r.Passed), r.Detail})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Check", "Status", "Detail"}, rows, nil))
			}

			if failed := preflight.Failed(results); len(failed) > 0 {
				return fmt.Errorf("%d preflight check(s) failed", len(failed))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print results as JSON")
	return cmd
}

func passLabel(passed bool) string {
	if passed {
		return "ok"
	}
	return "FAIL"
}
