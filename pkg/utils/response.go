package utils

import (
	"net/http"

	"github.com/goccy/go-json"
)

func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	WriteJSONAs(w, status, "application/json", data)
}

// WriteJSONAs encodes data as JSON under a specific media type such as application/ld+json.
func WriteJSONAs(w http.ResponseWriter, status int, contentType string, data interface{}) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]string{"error": message})
}

// WriteFieldErrors reports a validation failure along with the offending fields.
func WriteFieldErrors(w http.ResponseWriter, status int, message string, fields []string) {
	WriteJSON(w, status, map[string]interface{}{
		"error":  message,
		"fields": fields,
	})
}

// DecodeJSON decodes the request body into v.
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}
