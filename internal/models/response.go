package models

// Response is the envelope every endpoint answers with, success or failure.
// Data is omitted for error responses.
type Response struct {
	StatusCode int    `json:"statusCode"`     // Mirrors the HTTP status
	Message    string `json:"message"`        // Fixed human-readable message
	Data       any    `json:"data,omitempty"` // Payload, when there is one
}
