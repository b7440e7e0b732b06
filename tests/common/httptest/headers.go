//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertLocation checks the Location header of a 201 points at collection/id.
func AssertLocation(t *testing.T, w *httptest.ResponseRecorder, collection string, id uuid.UUID) {
	t.Helper()
	AssertHeaders(t, w, map[string]string{"Location": collection + "/" + id.String()})
}
