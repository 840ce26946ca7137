package httpapi

import (
	"encoding/json"
	"net/http"
)

// The external interface uses flat JSON bodies: errors are `{"message": "..."}` and
// successes are small fixed shapes. Status class, not body structure, is what
// distinguishes outcomes.

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
