package system

import (
	"encoding/json"
	"log"
	"net/http"
	"runtime"

	models "github.com/datatweets/greeting-service/internal/models/system"
)

// Version is the semantic version reported by /status.
const Version = "1.0.0"

// Endpoints lists the route templates in registration order, in the form
// the API documentation uses.
var Endpoints = []string{
	"/hello/<name>",
	"/goodbye/<name>",
	"/health",
	"/status",
	"/calculate/<operation>/<num1>/<num2>",
}

type System struct{}

func New() *System {
	return &System{}
}

// /health
func (s *System) Health(w http.ResponseWriter, r *http.Request) {
	const op = "system.Health"

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(models.HealthResponse{Status: "healthy"}); err != nil {
		log.Printf("%s: error encoding response, error: %s\n", op, err)
	}
}

// /status
func (s *System) Status(w http.ResponseWriter, r *http.Request) {
	const op = "system.Status"

	resp := models.StatusResponse{
		Status:         "operational",
		Version:        Version,
		RuntimeVersion: runtime.Version(),
		Endpoints:      Endpoints,
	}

	w.Header().Set("Content-Type", "application/json")

	// keep the <name> style endpoint templates literal on the wire
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(resp); err != nil {
		log.Printf("%s: error encoding response, error: %s\n", op, err)
	}
}
