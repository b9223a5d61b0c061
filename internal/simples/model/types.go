package model

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type SystemResponse struct {
	Success   bool          `json:"success"`
	Data      *SystemRecord `json:"data"`
	Timestamp string        `json:"timestamp"`
}

const HealthStatusOK = "OK"
