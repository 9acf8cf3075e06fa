package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
)

// WriteJSON writes the document model next to the rendered report.
func WriteJSON(doc *Document, path string) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	return writeAtomic(path, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

// nullable encodes non-finite values as null, which JSON has no number for.
type nullable []float64

func (v nullable) MarshalJSON() ([]byte, error) {
	out := make([]*float64, len(v))
	for i := range v {
		if isFinite(v[i]) {
			out[i] = &v[i]
		}
	}
	return json.Marshal(out)
}

func (v *nullable) UnmarshalJSON(data []byte) error {
	var in []*float64
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	out := make(nullable, len(in))
	for i, p := range in {
		if p == nil {
			out[i] = math.NaN()
			continue
		}
		out[i] = *p
	}
	*v = out
	return nil
}

func (c Curve) MarshalJSON() ([]byte, error) {
	type plain Curve
	return json.Marshal(struct {
		plain
		X nullable `json:"x"`
		Y nullable `json:"y"`
	}{plain(c), c.X, c.Y})
}

func (c *Curve) UnmarshalJSON(data []byte) error {
	type plain Curve
	aux := struct {
		*plain
		X nullable `json:"x"`
		Y nullable `json:"y"`
	}{plain: (*plain)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	c.X, c.Y = aux.X, aux.Y
	return nil
}
