package summary

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/gocarina/gocsv"
)

func WriteTable(w io.Writer, runs []Run, aggregated []Aggregated) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Run Summaries ===\n\n")
	writeRunTable(tw, runs)
	writeAggregatedTable(tw, aggregated)

	tw.Flush()
}

func writeRunTable(tw *tabwriter.Writer, runs []Run) {
	fmt.Fprintf(tw, "Optimum per run (%d runs)\n\n", len(runs))

	header := []string{"Run", "Source", "Epochs", "Best", "Train err", "Valid loss", "Valid err", "Test err", "Elapsed"}
	writeHeader(tw, header)

	for _, r := range runs {
		row := []string{
			r.Label,
			r.Source,
			fmt.Sprintf("%d", r.Epochs),
			fmt.Sprintf("%d", r.OptimumEpoch),
			fmt.Sprintf("%.4f", r.TrainError),
			fmt.Sprintf("%.4f", r.ValidLoss),
			fmt.Sprintf("%.4f", r.ValidError),
			fmt.Sprintf("%.4f", r.TestError),
			fmt.Sprintf("%.1f", r.Elapsed),
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)
}

func writeAggregatedTable(tw *tabwriter.Writer, aggregated []Aggregated) {
	fmt.Fprintf(tw, "Aggregated by label (mean ± std)\n\n")

	header := []string{"Label", "Trials", "Test err", "Valid err", "Elapsed", "Best epoch"}
	writeHeader(tw, header)

	for _, a := range aggregated {
		row := []string{
			a.Label,
			fmt.Sprintf("%d", a.Trials),
			fmt.Sprintf("%.4f ± %.4f", a.TestErrorMean, a.TestErrorStd),
			fmt.Sprintf("%.4f ± %.4f", a.ValidErrorMean, a.ValidErrorStd),
			fmt.Sprintf("%.1f ± %.1f", a.ElapsedMean, a.ElapsedStd),
			fmt.Sprintf("%.1f", a.OptimumEpochMean),
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)
}

func writeHeader(tw *tabwriter.Writer, header []string) {
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))
}

// WriteCSV exports one row per run with a header line.
func WriteCSV(w io.Writer, runs []Run) error {
	if err := gocsv.Marshal(runs, w); err != nil {
		return fmt.Errorf("marshal summaries: %w", err)
	}
	return nil
}
