package catalog

import "fmt"

// Catalog is the ordered list of (x, y) column pairs a comparison report renders,
// one page per entry.
type Catalog struct {
	Name    string   `yaml:"name"`
	XAxes   []int    `yaml:"x_axes,omitempty"`
	Metrics []int    `yaml:"metrics,omitempty"`
	Entries []Entry  `yaml:"entries"`
	Overlay *Overlay `yaml:"overlay,omitempty"`
}

type Entry struct {
	Name string `yaml:"name"`
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
}

// Overlay describes single-run pages: one page per base, each overlaying the
// base+offset columns against X.
type Overlay struct {
	X       int   `yaml:"x"`
	Bases   []int `yaml:"bases"`
	Offsets []int `yaml:"offsets"`
}

func (c *Catalog) Len() int {
	return len(c.Entries)
}

// MaxIndex is the highest column index any entry touches.
func (c *Catalog) MaxIndex() int {
	m := -1
	for _, e := range c.Entries {
		m = max(m, e.X, e.Y)
	}
	return m
}

// SingleOverlay returns the catalog's overlay or the default one.
func (c *Catalog) SingleOverlay() Overlay {
	if c != nil && c.Overlay != nil {
		return *c.Overlay
	}
	return DefaultOverlay()
}

func entryName(x, y int) string {
	return fmt.Sprintf("y%d-by-x%d", y, x)
}
