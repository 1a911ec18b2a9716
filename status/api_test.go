package status

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hermes "github.com/hermes-io/hermes"
)

func TestHealth(t *testing.T) {
	w := httptest.NewRecorder()
	Health(w, httptest.NewRequest("GET", "/health", nil))

	require.Equal(t, 200, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var res HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "healthy", res.Status)
	assert.Equal(t, ServiceName, res.Service)
	assert.Equal(t, hermes.VERSION, res.Version)
	assert.NotZero(t, res.Timestamp)
}

func TestReady(t *testing.T) {
	w := httptest.NewRecorder()
	Ready(w, httptest.NewRequest("GET", "/ready", nil))

	require.Equal(t, 200, w.Code)

	var res ReadyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "ready", res.Status)
	assert.Equal(t, map[string]string{"config": "ok"}, res.Checks)
}
