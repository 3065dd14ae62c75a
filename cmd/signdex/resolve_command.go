package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"signdex/internal/dataset"
	"signdex/internal/glossary"
	"signdex/internal/textutil"
)

// resolveEntry is the JSON shape for one resolve outcome.
type resolveEntry struct {
	Target   string `json:"target"`
	Resolved bool   `json:"resolved"`
	Tier     string `json:"tier,omitempty"`
	Clip     string `json:"clip,omitempty"`
}

func newResolveCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "resolve <dataset-path> [gloss...]",
		Short: "Show how target glosses would match the dataset, without copying",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			targets := args[1:]
			if len(targets) == 0 {
				targets = cfg.Vocabulary.Glosses
			}

			idx, err := dataset.Build(args[0], cfg.Dataset, logger)
			if err != nil {
				return err
			}
			result := glossary.Resolve(targets, idx)

			entries := make([]resolveEntry, 0, len(result.Resolutions))
			for _, res := range result.Resolutions {
				entry := resolveEntry{Target: res.Target, Resolved: res.Resolved}
				if res.Resolved {
					entry.Tier = string(res.Tier)
					entry.Clip = res.Video.Path
				}
				entries = append(entries, entry)
			}

			if jsonOut || !stdoutIsTerminal() {
				return writeJSON(cmd, entries)
			}

			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				status := "missing"
				clip := ""
				if entry.Resolved {
					status = "resolved"
					clip = filepath.Base(entry.Clip)
				}
				rows = append(rows, []string{textutil.DisplayLabel(entry.Target), status, entry.Tier, clip})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Target", "Status", "Match", "Clip"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
			))
			fmt.Fprintf(out, "%d resolved, %d missing (%d glosses indexed, %s layout)\n",
				len(result.Resolved()), len(result.Missing()), idx.Len(), idx.Layout())
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit resolutions as JSON")
	return cmd
}
