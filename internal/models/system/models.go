package models

type HealthResponse struct {
	Status string `json:"status"`
}

type StatusResponse struct {
	Status         string   `json:"status"`
	Version        string   `json:"version"`
	RuntimeVersion string   `json:"runtime_version"`
	Endpoints      []string `json:"endpoints"`
}
