package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// WriteTable prints a page index of the document.
func WriteTable(doc *Document, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== %s ===\n", doc.Title)
	fmt.Fprintf(tw, "Runs: %s\n\n", strings.Join(doc.Runs, ", "))

	header := []string{"Page", "Title", "X", "Y", "Curves", "Points"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for i, p := range doc.Pages {
		points := 0
		for _, c := range p.Curves {
			points += len(c.X)
		}
		row := []string{
			fmt.Sprintf("%d", i+1),
			p.Title,
			p.XLabel,
			p.YLabel,
			fmt.Sprintf("%d", len(p.Curves)),
			fmt.Sprintf("%d", points),
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)
	tw.Flush()
}
