package report

import "github.com/DjordjeVuckovic/runplot/internal/runlog"

const lineWidth = 2.0

var (
	dashed = []float64{6, 4}
	dotted = []float64{1.5, 3}
)

var splitStyles = map[runlog.Split]Style{
	runlog.Train: {Color: "d62728", Dash: dashed, Width: lineWidth},
	runlog.Valid: {Color: "2ca02c", Dash: dotted, Width: lineWidth},
	runlog.Test:  {Color: "1f77b4", Width: lineWidth},
}

// palette is the ten-color qualitative cycle used for run overlays.
var palette = []string{
	"1f77b4", "ff7f0e", "2ca02c", "d62728", "9467bd",
	"8c564b", "e377c2", "7f7f7f", "bcbd22", "17becf",
}

var cycleDashes = [][]float64{nil, dashed, dotted}

// splitStyle returns the style of the i-th overlay curve on a single-run page.
func splitStyle(i int) Style {
	splits := runlog.Splits()
	if i < len(splits) {
		return splitStyles[splits[i].Split]
	}
	return runStyle(i)
}

// runStyle returns the style of the i-th run on a comparison page. Colors cycle
// through the palette; each full cycle switches the dash pattern.
func runStyle(i int) Style {
	return Style{
		Color: palette[i%len(palette)],
		Dash:  cycleDashes[(i/len(palette))%len(cycleDashes)],
		Width: lineWidth,
	}
}
