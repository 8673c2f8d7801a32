//go:build unit

package numstr_test

import (
	"encoding/json"
	"testing"

	"car-rental/internal/pkg/numstr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloat_UnmarshalJSON(t *testing.T) {
	valid := []struct {
		in   string
		want float64
	}{
		{in: `37.6`, want: 37.6},
		{in: `"37.60"`, want: 37.6},
		{in: `"100"`, want: 100},
		{in: `0`, want: 0},
		{in: `"-10.5"`, want: -10.5},
	}
	for _, tc := range valid {
		var f numstr.Float
		require.NoError(t, json.Unmarshal([]byte(tc.in), &f), tc.in)
		assert.InDelta(t, tc.want, f.Float64(), 1e-9, tc.in)
	}

	for _, in := range []string{`"abc"`, `""`, `"NaN"`, `"Inf"`, `true`, `[1]`} {
		var f numstr.Float
		assert.Error(t, json.Unmarshal([]byte(in), &f), in)
	}

	t.Run("encodes as a number", func(t *testing.T) {
		b, err := json.Marshal(struct {
			Price numstr.Float `json:"price"`
		}{Price: 37.6})
		require.NoError(t, err)
		assert.JSONEq(t, `{"price":37.6}`, string(b))
	})
}
