package handler

import (
	"encoding/json"
	"net/http"
)

// successEnvelope is the uniform success wire shape. Data is always present
// and is null when an operation has no payload.
type successEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// errorEnvelope carries failures. It has no data field.
type errorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeSuccess(w http.ResponseWriter, status int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(successEnvelope{Success: true, Message: message, Data: data})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorEnvelope{Success: false, Message: message})
}
