// Package numstr decodes numbers that clients and old seed files send either
// as JSON numbers or as numeric strings ("37.60").
package numstr

import (
	"encoding/json"
	"math"
	"strconv"

	"car-rental/internal/pkg/errs"
)

// Float encodes as a plain JSON number and decodes from a number or a
// numeric string. NaN and infinities are rejected.
type Float float64

func (f *Float) UnmarshalJSON(b []byte) error {
	raw := b
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		raw = []byte(s)
	}
	v, err := strconv.ParseFloat(string(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return errs.Newf("%s is not a number", b)
	}
	*f = Float(v)
	return nil
}

func (f Float) Float64() float64 {
	return float64(f)
}
