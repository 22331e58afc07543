package handlers

import (
	"encoding/json"
	"net/http"
	"time"
)

// Version is overridden at build time with -ldflags.
var Version = "1.0.0"

// ConfigurationChecker is satisfied by the HubSpot client.
type ConfigurationChecker interface {
	Configured() bool
}

type HealthHandler struct {
	HubSpot   ConfigurationChecker
	StartTime time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(hubSpot ConfigurationChecker) *HealthHandler {
	return &HealthHandler{
		HubSpot:   hubSpot,
		StartTime: time.Now(),
	}
}

// Handle only inspects local state; it never calls HubSpot.
func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	if h.HubSpot != nil && h.HubSpot.Configured() {
		deps["hubspot"] = "configured"
	} else {
		deps["hubspot"] = "not configured"
	}

	status := "healthy"
	if deps["hubspot"] != "configured" {
		status = "degraded"
	}

	response := HealthResponse{
		Status:       status,
		Version:      Version,
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Dependencies: deps,
	}

	w.Header().Set("Content-Type", "application/json")
	if status == "degraded" {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}

	json.NewEncoder(w).Encode(response)
}
