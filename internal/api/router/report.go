package router

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/DjordjeVuckovic/runplot/internal/apperr"
	"github.com/DjordjeVuckovic/runplot/internal/catalog"
	"github.com/DjordjeVuckovic/runplot/internal/report"
	"github.com/DjordjeVuckovic/runplot/internal/runlog"
	"github.com/DjordjeVuckovic/runplot/internal/storage"
	"github.com/DjordjeVuckovic/runplot/internal/summary"
)

type ReportRouter struct {
	e        *echo.Echo
	renderer *report.Renderer
	storer   storage.Storer
	tmpDir   string
	logRoot  string
}

type ReportRouterOption func(*ReportRouter)

// WithStorer persists every summary the API computes.
func WithStorer(s storage.Storer) ReportRouterOption {
	return func(r *ReportRouter) {
		r.storer = s
	}
}

// WithTempDir sets where per-request render directories are created.
func WithTempDir(dir string) ReportRouterOption {
	return func(r *ReportRouter) {
		r.tmpDir = dir
	}
}

// WithLogRoot confines every run log and catalog path a request names to root.
// Relative request paths are resolved against it.
func WithLogRoot(root string) ReportRouterOption {
	return func(r *ReportRouter) {
		r.logRoot = root
	}
}

// NewReportRouter defaults the log root to the working directory.
func NewReportRouter(e *echo.Echo, renderer *report.Renderer, opts ...ReportRouterOption) *ReportRouter {
	r := &ReportRouter{
		e:        e,
		renderer: renderer,
		logRoot:  ".",
	}
	for _, opt := range opts {
		opt(r)
	}
	if abs, err := filepath.Abs(r.logRoot); err == nil {
		r.logRoot = abs
	}
	if real, err := filepath.EvalSymlinks(r.logRoot); err == nil {
		r.logRoot = real
	}
	return r
}

func (r *ReportRouter) Bind() {
	v1 := r.e.Group("/api/v1")
	v1.POST("/reports/single", r.singleHandler)
	v1.POST("/reports/compare", r.compareHandler)
	v1.POST("/summaries", r.summariesHandler)
}

type SingleRequest struct {
	Path string `json:"path"`
}

type CompareRequest struct {
	Paths   []string `json:"paths"`
	Catalog string   `json:"catalog,omitempty"`
}

type SummariesRequest struct {
	Paths []string `json:"paths"`
}

type SummariesResponse struct {
	Runs       []summary.Run        `json:"runs"`
	Aggregated []summary.Aggregated `json:"aggregated"`
	Stored     bool                 `json:"stored"`
}

func (r *ReportRouter) singleHandler(c echo.Context) error {
	var req SingleRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	path, err := r.resolve(req.Path)
	if err != nil {
		return err
	}

	return r.renderTo(c, runlog.DeriveLabel(path), func(out string) error {
		_, err := r.renderer.RenderSingle(path, out)
		return err
	})
}

func (r *ReportRouter) compareHandler(c echo.Context) error {
	var req CompareRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	paths, err := r.resolveAll(req.Paths)
	if err != nil {
		return err
	}

	var cat *catalog.Catalog
	if req.Catalog != "" {
		catPath, err := r.resolve(req.Catalog)
		if err != nil {
			return err
		}
		if cat, err = catalog.LoadFromFile(catPath); err != nil {
			return err
		}
	}

	return r.renderTo(c, "compare", func(out string) error {
		var err error
		if cat != nil {
			_, err = r.renderer.RenderManyWith(cat, paths, out)
		} else {
			_, err = r.renderer.RenderMany(paths, out)
		}
		return err
	})
}

func (r *ReportRouter) summariesHandler(c echo.Context) error {
	var req SummariesRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	paths, err := r.resolveAll(req.Paths)
	if err != nil {
		return err
	}

	runs, err := summary.SummarizeAll(paths)
	if err != nil {
		return err
	}

	resp := SummariesResponse{Runs: runs, Aggregated: summary.Aggregate(runs)}
	if r.storer != nil {
		if err := r.storer.Save(c.Request().Context(), resp.Runs); err != nil {
			return fmt.Errorf("store summaries: %w", err)
		}
		resp.Stored = true
	}

	return c.JSON(http.StatusOK, resp)
}

// resolve maps a request path into the log root. Paths that leave the root,
// directly or through a symlink, are rejected before anything is opened.
func (r *ReportRouter) resolve(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", apperr.NewValidation("path is required")
	}

	resolved := path
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(r.logRoot, resolved)
	}
	resolved = filepath.Clean(resolved)
	if real, err := filepath.EvalSymlinks(resolved); err == nil {
		resolved = real
	}

	rel, err := filepath.Rel(r.logRoot, resolved)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", apperr.NewValidation(fmt.Sprintf("path %q is outside the log root", path))
	}
	return resolved, nil
}

func (r *ReportRouter) resolveAll(paths []string) ([]string, error) {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		resolved, err := r.resolve(p)
		if err != nil {
			return nil, err
		}
		out = append(out, resolved)
	}
	return out, nil
}

// renderTo renders into a private temporary directory, streams the PDF and
// removes the directory afterwards.
func (r *ReportRouter) renderTo(c echo.Context, name string, render func(out string) error) error {
	dir, err := os.MkdirTemp(r.tmpDir, "runplot-*")
	if err != nil {
		return fmt.Errorf("create render dir: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(dir); err != nil {
			slog.Warn("Failed to remove render dir", "dir", dir, "error", err)
		}
	}()

	out := filepath.Join(dir, "report.pdf")
	if err := render(out); err != nil {
		return err
	}

	if name == "" {
		name = "report"
	}
	return c.Attachment(out, name+".pdf")
}
