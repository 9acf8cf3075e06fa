package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DjordjeVuckovic/runplot/internal/storage/factory"
	"github.com/DjordjeVuckovic/runplot/internal/summary"
)

func newSummarizeCmd() *cobra.Command {
	var (
		csvPath string
		store   bool
	)

	cmd := &cobra.Command{
		Use:   "summarize <log>... [flags]",
		Short: "print the optimum epoch of every run and per-label aggregates",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := summary.SummarizeAll(args)
			if err != nil {
				return err
			}

			if store {
				if err := storeRuns(cmd, runs); err != nil {
					return err
				}
			}

			if csvPath != "" {
				if err := writeCSVFile(csvPath, runs); err != nil {
					return err
				}
			}

			summary.WriteTable(cmd.OutOrStdout(), runs, summary.Aggregate(runs))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&csvPath, "csv", "", "also write the run summaries as CSV to this path")
	flags.BoolVar(&store, "store", false, "persist summaries to the store selected by STORAGE_TYPE")
	return cmd
}

func storeRuns(cmd *cobra.Command, runs []summary.Run) error {
	cfg, err := factory.LoadEnv()
	if err != nil {
		return err
	}
	storer, _, err := factory.NewStorer(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer storer.Close()

	return storer.Save(cmd.Context(), runs)
}

func writeCSVFile(path string, runs []summary.Run) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close csv: %w", cerr)
		}
	}()
	return summary.WriteCSV(f, runs)
}
