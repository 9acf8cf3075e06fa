package main

import (
	"github.com/spf13/cobra"

	"github.com/DjordjeVuckovic/runplot/internal/catalog"
	"github.com/DjordjeVuckovic/runplot/internal/report"
)

var description = `
runplot reads whitespace-delimited training run logs and renders them as
multi-page PDF reports: one run with its train/valid/test curves overlaid, or
many runs compared metric by metric.
`

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:               "runplot <command> [flags]",
		Short:             "plot training run logs into PDF reports.",
		Long:              description,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	root.AddCommand(newSingleCmd())
	root.AddCommand(newCompareCmd())
	root.AddCommand(newSummarizeCmd())
	return root
}

type renderFlags struct {
	output      string
	jsonPath    string
	catalogPath string
}

func (f *renderFlags) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.output, "output", "o", "report.pdf", "path of the PDF report")
	flags.StringVar(&f.jsonPath, "json", "", "also write the document model as JSON to this path")
	flags.StringVar(&f.catalogPath, "catalog", "", "metric catalog YAML; defaults to the built-in catalog")
}

func (f *renderFlags) renderer() (*report.Renderer, *catalog.Catalog, error) {
	if f.catalogPath == "" {
		return report.NewRenderer(), catalog.Default(), nil
	}
	c, err := catalog.LoadFromFile(f.catalogPath)
	if err != nil {
		return nil, nil, err
	}
	return report.NewRenderer(report.WithCatalog(c)), c, nil
}

func (f *renderFlags) finish(cmd *cobra.Command, doc *report.Document) error {
	if f.jsonPath != "" {
		if err := report.WriteJSON(doc, f.jsonPath); err != nil {
			return err
		}
	}
	report.WriteTable(doc, cmd.OutOrStdout())
	return nil
}
