package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"signdex/internal/dataset"
)

func newGlossesCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "glosses <dataset-path>",
		Short: "List every gloss discoverable in the dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			idx, err := dataset.Build(args[0], cfg.Dataset, logger)
			if err != nil {
				return err
			}

			glosses := idx.Glosses()
			if jsonOut {
				return writeJSON(cmd, glosses)
			}
			out := cmd.OutOrStdout()
			for _, gloss := range glosses {
				fmt.Fprintln(out, gloss)
			}
			if stdoutIsTerminal() {
				fmt.Fprintf(cmd.ErrOrStderr(), "%d glosses (%s layout)\n", idx.Len(), idx.Layout())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the gloss list as JSON")
	return cmd
}
