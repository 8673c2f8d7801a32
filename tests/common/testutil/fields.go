//go:build unit || e2e

package testutil

import "strings"

// Field sets or, for a nil value, deletes a request field. Dotted paths
// reach into nested objects, e.g. "customer.age".
func Field(path string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		keys := strings.Split(path, ".")
		for _, k := range keys[:len(keys)-1] {
			inner, ok := m[k].(map[string]any)
			if !ok {
				return
			}
			m = inner
		}

		last := keys[len(keys)-1]
		if value == nil {
			delete(m, last)
		} else {
			m[last] = value
		}
	}
}
