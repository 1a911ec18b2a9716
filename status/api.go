// Package status serves the config-gated health and readiness endpoints.
package status

import (
	"net/http"
	"time"

	hermes "github.com/hermes-io/hermes"
	"github.com/hermes-io/hermes/pkg/http/response"
)

const ServiceName = "hermes"

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"`
	Service   string `json:"service"`
	Version   string `json:"version"`
}

type ReadyResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Unix(),
		Service:   ServiceName,
		Version:   hermes.VERSION,
	})
}

// Ready reports readiness. The registry is immutable and built before the
// server starts listening, so a serving process is by construction ready.
func Ready(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, ReadyResponse{
		Status: "ready",
		Checks: map[string]string{"config": "ok"},
	})
}
