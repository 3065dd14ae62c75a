package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"signdex/internal/importer"
	"signdex/internal/ledger"
	"signdex/internal/logging"
	"signdex/internal/manifest"
	"signdex/internal/textutil"
)

// missingDisplayLimit caps the unmatched glosses shown on the console; the
// manifest always records the full list.
const missingDisplayLimit = 20

func newImportCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "import <dataset-path>",
		Short: "Copy clips for the target vocabulary into the assets directory",
		Long: `Import scans the WLASL dataset at the given path, resolves every gloss in
the configured vocabulary against it, and copies the matching clips into the
assets directory under canonical names. A manifest and a listing of all
available glosses are written beside the clips.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("overwrite") {
				cfg.Import.OverwriteExisting = overwrite
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			store, err := ledger.Open(cfg)
			if err != nil {
				logger.Warn("import history unavailable", logging.Error(err))
				store = nil
			} else {
				defer store.Close()
			}

			report, err := importer.New(cfg, store, logger).Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if jsonOut || !stdoutIsTerminal() {
				return writeJSON(cmd, report)
			}
			renderImportReport(cmd, cfg.Paths.AssetsDir, report)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the run report as JSON")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace assets that already exist (overrides config)")
	return cmd
}

func renderImportReport(cmd *cobra.Command, assetsDir string, report importer.Report) {
	out := cmd.OutOrStdout()

	if len(report.Copied) > 0 {
		rows := make([][]string, 0, len(report.Copied))
		for _, entry := range report.Copied {
			rows = append(rows, []string{
				textutil.DisplayLabel(entry.Gloss),
				string(entry.Tier),
				filepath.Base(entry.Source),
				entry.DestFile,
			})
		}
		fmt.Fprintln(out, renderTable(
			[]string{"Gloss", "Match", "Clip", "Asset"},
			rows,
			[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
		))
	}

	total := len(report.Copied) + len(report.Missing)
	fmt.Fprintf(out, "Imported %d of %d targets from %s (%s layout, %d glosses indexed)\n",
		len(report.Copied), total, report.SourceTag, report.Layout, report.IndexSize)

	if len(report.Missing) > 0 {
		fmt.Fprintf(out, "\nMissing (%d):\n", len(report.Missing))
		shown := report.Missing
		if len(shown) > missingDisplayLimit {
			shown = shown[:missingDisplayLimit]
		}
		for _, gloss := range shown {
			fmt.Fprintf(out, "  - %s\n", gloss)
		}
		if hidden := len(report.Missing) - len(shown); hidden > 0 {
			fmt.Fprintf(out, "  ... and %d more (see %s)\n", hidden, manifest.FileName)
		}
	}

	fmt.Fprintf(out, "\nmanifest: %s\n", filepath.Join(assetsDir, manifest.FileName))
	fmt.Fprintf(out, "assets:   %s\n", assetsDir)
}
