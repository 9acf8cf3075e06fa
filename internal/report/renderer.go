package report

import (
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/runplot/internal/apperr"
	"github.com/DjordjeVuckovic/runplot/internal/catalog"
	"github.com/DjordjeVuckovic/runplot/internal/runlog"
)

// Renderer turns run logs into multi-page PDF reports.
type Renderer struct {
	catalog *catalog.Catalog
	overlay catalog.Overlay
	now     func() time.Time
}

type Option func(*Renderer)

// WithCatalog sets the comparison catalog. A catalog overlay section also
// replaces the single-run layout.
func WithCatalog(c *catalog.Catalog) Option {
	return func(r *Renderer) {
		if c == nil {
			return
		}
		r.catalog = c
		r.overlay = c.SingleOverlay()
	}
}

func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		r.now = now
	}
}

func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		catalog: catalog.Default(),
		overlay: catalog.DefaultOverlay(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RenderSingle writes one page per overlay base for the run log at path.
func (r *Renderer) RenderSingle(path, reportPath string) (*Document, error) {
	run, err := runlog.Read(path)
	if err != nil {
		return nil, err
	}

	doc, err := BuildSingle(run, r.overlay, r.now())
	if err != nil {
		return nil, err
	}
	if err := WritePDF(doc, reportPath); err != nil {
		return nil, err
	}

	slog.Info("Single-run report written", "run", run.Label, "pages", len(doc.Pages), "path", reportPath)
	return doc, nil
}

// RenderMany writes one page per catalog entry, overlaying every run log in
// input order.
func (r *Renderer) RenderMany(paths []string, reportPath string) (*Document, error) {
	return r.RenderManyWith(r.catalog, paths, reportPath)
}

func (r *Renderer) RenderManyWith(c *catalog.Catalog, paths []string, reportPath string) (*Document, error) {
	if len(paths) == 0 {
		return nil, apperr.NewInput("no run logs to compare")
	}

	runs, err := runlog.ReadAll(paths)
	if err != nil {
		return nil, err
	}

	doc, err := BuildMany(runs, c, r.now())
	if err != nil {
		return nil, err
	}
	if err := WritePDF(doc, reportPath); err != nil {
		return nil, err
	}

	slog.Info("Comparison report written", "catalog", c.Name, "runs", len(runs), "pages", len(doc.Pages), "path", reportPath)
	return doc, nil
}

// RenderSingle renders a single-run report with the default layout.
func RenderSingle(path, reportPath string) error {
	_, err := NewRenderer().RenderSingle(path, reportPath)
	return err
}

// RenderMany renders a comparison report with the default catalog.
func RenderMany(paths []string, reportPath string) error {
	_, err := NewRenderer().RenderMany(paths, reportPath)
	return err
}
