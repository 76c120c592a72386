package models

// ErrorResponse is the JSON body the API returns for failed requests,
// e.g. {"error": "Meal not found or unauthorized"}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse is the JSON body returned by update and delete on success.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// HealthStatus is the response body of GET /api/health.
type HealthStatus struct {
	// Status is "ok" whenever the API process answers.
	Status string `json:"status"`

	// Database describes the backing database connectivity.
	Database DatabaseStatus `json:"database"`

	// Environment reports which optional settings are configured.
	Environment map[string]bool `json:"environment,omitempty"`
}

// DatabaseStatus is the database part of HealthStatus.
type DatabaseStatus struct {
	Status  string  `json:"status"`
	Error   *string `json:"error"`
	Details string  `json:"details"`
}
