package utilities

import (
	"encoding/json"
	"net/http"
)

// Envelope is the uniform response body returned by every endpoint.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// WriteEnvelope serializes an Envelope with the given status code.
func WriteEnvelope(w http.ResponseWriter, status int, e Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(e)
}

// RespondOK writes a success envelope.
func RespondOK(w http.ResponseWriter, status int, message string, data any) {
	WriteEnvelope(w, status, Envelope{Success: true, Message: message, Data: data})
}

// RespondErr writes a failure envelope.
func RespondErr(w http.ResponseWriter, status int, message string) {
	WriteEnvelope(w, status, Envelope{Success: false, Message: message})
}
