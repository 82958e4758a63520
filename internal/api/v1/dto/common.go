package dto

// DataResponse is the success envelope shared by every endpoint
type DataResponse struct {
	Data    interface{} `json:"data"`
	Message string      `json:"message,omitempty"`
}

// HealthResponse reports reachability of the database and n8n
type HealthResponse struct {
	Database bool `json:"database"`
	N8N      bool `json:"n8n"`
}

// HealthEnvelope is the body of GET /api/health, including the failure case
type HealthEnvelope struct {
	Data    HealthResponse `json:"data"`
	Message string         `json:"message,omitempty"`
	Error   string         `json:"error,omitempty"`
}
