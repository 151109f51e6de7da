package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/pointsgame/admin-service/internal/models"
)

// writeResponse writes the uniform response envelope. Every handler answers
// through it, success or failure.
func writeResponse(w http.ResponseWriter, code int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(models.Response{
		StatusCode: code,
		Message:    message,
		Data:       data,
	})
}
