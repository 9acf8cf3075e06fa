package report

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Document is an ordered set of chart pages persisted as one multi-page file.
type Document struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Kind      Kind      `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
	Runs      []string  `json:"runs"`
	Pages     []Page    `json:"pages"`
}

type Kind string

const (
	Single  Kind = "single"
	Compare Kind = "compare"
)

type Page struct {
	Title  string  `json:"title"`
	XLabel string  `json:"x_label"`
	YLabel string  `json:"y_label"`
	Curves []Curve `json:"curves"`
}

type Curve struct {
	Name  string    `json:"name"`
	X     []float64 `json:"x"`
	Y     []float64 `json:"y"`
	Style Style     `json:"style"`
}

// Style is the fixed visual encoding of a curve. Color is a hex RGB string,
// Dash an on/off stroke pattern; an empty Dash draws a solid line.
type Style struct {
	Color string    `json:"color"`
	Dash  []float64 `json:"dash,omitempty"`
	Width float64   `json:"width"`
}

// Legend lists the curve names of a page in drawing order.
func (p Page) Legend() []string {
	names := make([]string, len(p.Curves))
	for i, c := range p.Curves {
		names[i] = c.Name
	}
	return names
}

// Empty reports whether no curve on the page has a finite point.
func (p Page) Empty() bool {
	for _, c := range p.Curves {
		if xs, _ := c.Finite(); len(xs) > 0 {
			return false
		}
	}
	return true
}

// Finite returns the points of the curve where both coordinates are finite.
func (c Curve) Finite() (xs, ys []float64) {
	for i := range min(len(c.X), len(c.Y)) {
		if isFinite(c.X[i]) && isFinite(c.Y[i]) {
			xs = append(xs, c.X[i])
			ys = append(ys, c.Y[i])
		}
	}
	return xs, ys
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
