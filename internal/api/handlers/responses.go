// Package handlers holds the JSON helpers shared by all HTTP handlers.
// Success payloads are wrapped in a {"data": ...} envelope and errors in
// {"error": "..."}; handlers never hand out any other shape.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const msgInternalError = "erreur interne du serveur"

// DecodeJSON decodes the request body into dst, rejecting unknown fields
func DecodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

type dataEnvelope struct {
	Data interface{} `json:"data"`
}

type errorEnvelope struct {
	Error string `json:"error"`
}

// RespondJSON writes a raw JSON payload
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// RespondData writes the payload inside the {"data": ...} envelope
func RespondData(w http.ResponseWriter, status int, payload interface{}) {
	RespondJSON(w, status, dataEnvelope{Data: payload})
}

// RespondError writes the {"error": ...} envelope
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, errorEnvelope{Error: message})
}

// RespondBadRequest writes a 400 error
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondNotFound writes a 404 error
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondConflict writes a 409 error
func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondInternalError writes a 500 error with a generic message
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}
