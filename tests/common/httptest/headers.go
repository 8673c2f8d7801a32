//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertRequestID checks the logging middleware tagged the response.
func AssertRequestID(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	id := w.Header().Get("X-Request-ID")
	assert.NotEmpty(t, id, "response carries no X-Request-ID")
	return id
}

// AssertCORSAllowed checks origin was echoed back by the CORS middleware.
func AssertCORSAllowed(t *testing.T, w *httptest.ResponseRecorder, origin string) {
	t.Helper()
	assert.Equal(t, origin, w.Header().Get("Access-Control-Allow-Origin"), "origin %s not allowed", origin)
}
