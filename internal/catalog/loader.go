package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/DjordjeVuckovic/runplot/internal/apperr"
)

func LoadFromFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.NewValidationWrap("read catalog file", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, apperr.NewValidationWrap("parse catalog YAML", err)
	}
	c.expand()
	if err := validate(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// expand prepends the x_axes × metrics cross product, metric-major, to the
// explicit entries and fills in missing entry names.
func (c *Catalog) expand() {
	var crossed []Entry
	for _, y := range c.Metrics {
		for _, x := range c.XAxes {
			crossed = append(crossed, Entry{X: x, Y: y})
		}
	}
	c.Entries = append(crossed, c.Entries...)

	for i := range c.Entries {
		if c.Entries[i].Name == "" {
			c.Entries[i].Name = entryName(c.Entries[i].X, c.Entries[i].Y)
		}
	}
}

func validate(c *Catalog) error {
	if (len(c.Metrics) > 0) != (len(c.XAxes) > 0) {
		return apperr.NewValidation("catalog needs both x_axes and metrics to cross them")
	}
	if len(c.Entries) == 0 {
		return apperr.NewValidation("catalog has no entries")
	}
	for i, e := range c.Entries {
		if e.X < 0 || e.Y < 0 {
			return apperr.NewValidation(fmt.Sprintf("entry %d (%s) has a negative column index", i, e.Name))
		}
	}
	if o := c.Overlay; o != nil {
		if len(o.Bases) == 0 || len(o.Offsets) == 0 {
			return apperr.NewValidation("overlay needs bases and offsets")
		}
		if o.X < 0 {
			return apperr.NewValidation("overlay has a negative x column")
		}
	}
	if c.Name == "" {
		c.Name = "custom"
	}
	return nil
}
