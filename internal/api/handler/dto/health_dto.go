package dto

type HealthDetails struct {
	APIVersion  string `json:"api_version"`
	Environment string `json:"environment"`
}

// HealthResponse always travels with HTTP 200; a broken database shows up as
// status "unhealthy" in the body, never as an error status.
type HealthResponse struct {
	Status    string         `json:"status"`
	Timestamp string         `json:"timestamp"`
	Database  string         `json:"database"`
	Details   *HealthDetails `json:"details,omitempty"`
	Error     string         `json:"error,omitempty"`
}

type WelcomeResponse struct {
	Message string `json:"message"`
}
