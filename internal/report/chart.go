package report

import (
	"bytes"
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	ChartWidth  = 1024
	ChartHeight = 768
)

// RenderPNG draws one page as a line chart with an in-chart legend. Non-finite
// points are left out of the series and the axis ranges.
func RenderPNG(p Page) ([]byte, error) {
	series := make([]chart.Series, 0, len(p.Curves))
	for _, c := range p.Curves {
		xs, ys := c.Finite()
		if len(xs) == 0 {
			continue
		}
		// Pad to at least two X values for go-chart
		if len(xs) == 1 {
			xs = []float64{xs[0], xs[0] + 1}
			ys = []float64{ys[0], ys[0]}
		}
		series = append(series, chart.ContinuousSeries{
			Name:    c.Name,
			XValues: xs,
			YValues: ys,
			Style:   seriesStyle(c.Style),
		})
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("page %q has no points", p.Title)
	}

	xr, yr := bounds(p)
	ch := chart.Chart{
		Title:      p.Title,
		Width:      ChartWidth,
		Height:     ChartHeight,
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 24, Right: 24, Bottom: 24}},
		XAxis:      chart.XAxis{Name: p.XLabel, Range: xr},
		YAxis:      chart.YAxis{Name: p.YLabel, Range: yr},
		Series:     series,
	}
	legend := chart.Chart{Series: legendSeries(p)}
	ch.Elements = []chart.Renderable{chart.Legend(&legend)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render page %q: %w", p.Title, err)
	}
	return buf.Bytes(), nil
}

// legendSeries names every curve of the page in order, including runs with no
// drawable point. The series only feed the legend and are never plotted.
func legendSeries(p Page) []chart.Series {
	out := make([]chart.Series, len(p.Curves))
	for i, c := range p.Curves {
		out[i] = chart.ContinuousSeries{Name: c.Name, Style: seriesStyle(c.Style)}
	}
	return out
}

func seriesStyle(s Style) chart.Style {
	return chart.Style{
		StrokeColor:     drawing.ColorFromHex(s.Color),
		StrokeWidth:     s.Width,
		StrokeDashArray: s.Dash,
	}
}

// bounds returns explicit axis ranges when the data spans a single value on an
// axis, which go-chart rejects; otherwise ranges are left to the chart.
func bounds(p Page) (x, y chart.Range) {
	xMin, xMax := math.Inf(1), math.Inf(-1)
	yMin, yMax := math.Inf(1), math.Inf(-1)
	for _, c := range p.Curves {
		xs, ys := c.Finite()
		for i := range xs {
			xMin, xMax = math.Min(xMin, xs[i]), math.Max(xMax, xs[i])
			yMin, yMax = math.Min(yMin, ys[i]), math.Max(yMax, ys[i])
		}
	}
	if xMin == xMax {
		x = &chart.ContinuousRange{Min: xMin, Max: xMax + 1}
	}
	if yMin == yMax {
		y = &chart.ContinuousRange{Min: yMin - 0.5, Max: yMax + 0.5}
	}
	return x, y
}
