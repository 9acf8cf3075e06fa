package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/runplot/internal/apperr"
	"github.com/DjordjeVuckovic/runplot/internal/catalog"
	"github.com/DjordjeVuckovic/runplot/internal/runlog"
)

// BuildSingle lays out one page per overlay base, each drawing the base+offset
// columns of a single run against the overlay x column.
func BuildSingle(run *runlog.Labeled, overlay catalog.Overlay, now time.Time) (*Document, error) {
	t := run.Table
	x, err := t.Values(overlay.X)
	if err != nil {
		return nil, fmt.Errorf("run %q: %w", run.Label, err)
	}
	xName, _ := t.Name(overlay.X)

	doc := newDocument(Single, run.Label, []string{run.Label}, now)
	for _, base := range overlay.Bases {
		page := Page{Title: run.Label, XLabel: xName}
		for i, off := range overlay.Offsets {
			col := base + off
			name, err := t.Name(col)
			if err != nil {
				return nil, fmt.Errorf("run %q: %w", run.Label, err)
			}
			y, _ := t.Values(col)
			if i == 0 {
				page.YLabel = runlog.StripSplitPrefix(name)
			}
			page.Curves = append(page.Curves, Curve{
				Name:  name,
				X:     x,
				Y:     y,
				Style: splitStyle(i),
			})
		}
		doc.Pages = append(doc.Pages, page)
	}

	return doc, nil
}

// BuildMany lays out one page per catalog entry, each overlaying the entry's
// column pair across all runs in input order. Column names come from the first
// run; every run must share its header.
func BuildMany(runs []*runlog.Labeled, c *catalog.Catalog, now time.Time) (*Document, error) {
	if len(runs) == 0 {
		return nil, apperr.NewInput("no run logs to compare")
	}
	if c == nil || c.Len() == 0 {
		return nil, apperr.NewInput("empty metric catalog")
	}

	first := runs[0]
	labels := make([]string, len(runs))
	for i, r := range runs {
		labels[i] = r.Label
		if i > 0 && !r.Table.SameSchema(first.Table) {
			return nil, apperr.NewParse(fmt.Sprintf(
				"run %q: column layout (%d fields) differs from run %q (%d fields)",
				r.Label, r.Table.Width(), first.Label, first.Table.Width()))
		}
	}

	doc := newDocument(Compare, c.Name, labels, now)
	for _, e := range c.Entries {
		xName, err := first.Table.Name(e.X)
		if err != nil {
			return nil, fmt.Errorf("catalog entry %q: %w", e.Name, err)
		}
		yName, err := first.Table.Name(e.Y)
		if err != nil {
			return nil, fmt.Errorf("catalog entry %q: %w", e.Name, err)
		}

		page := Page{
			Title:  yName,
			XLabel: xName,
			YLabel: runlog.StripSplitPrefix(yName),
			Curves: make([]Curve, 0, len(runs)),
		}
		for i, r := range runs {
			xs, _ := r.Table.Values(e.X)
			ys, _ := r.Table.Values(e.Y)
			page.Curves = append(page.Curves, Curve{
				Name:  r.Label,
				X:     xs,
				Y:     ys,
				Style: runStyle(i),
			})
		}
		doc.Pages = append(doc.Pages, page)
	}

	return doc, nil
}

func newDocument(kind Kind, name string, runs []string, now time.Time) *Document {
	title := fmt.Sprintf("%s report: %s", kind, name)
	if kind == Compare {
		title = fmt.Sprintf("%s report (%s): %s", kind, name, strings.Join(runs, ", "))
	}
	return &Document{
		ID:        uuid.New(),
		Title:     title,
		Kind:      kind,
		CreatedAt: now.UTC().Truncate(time.Second),
		Runs:      runs,
	}
}
