package httpapi

import (
	"encoding/json"
	"net/http"
)

// ErrorEnvelope is the failure body of the admin REST API. Backends fill
// Message, Error, or both; clients prefer Message.
type ErrorEnvelope struct {
	Message string            `json:"message,omitempty"`
	Error   string            `json:"error,omitempty"`
	Code    string            `json:"code,omitempty"`
	Meta    map[string]string `json:"meta,omitempty"`
}

// Page is the paginated list body: {data: [...], total_items: n}.
type Page[T any] struct {
	Data       []T `json:"data"`
	TotalItems int `json:"total_items"`
}

func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	if w == nil {
		return nil
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return nil
	}
	return json.NewEncoder(w).Encode(payload)
}

func WriteError(w http.ResponseWriter, status int, code, message string, meta map[string]string) error {
	return WriteJSON(w, status, &ErrorEnvelope{
		Code:    code,
		Message: message,
		Meta:    meta,
	})
}
