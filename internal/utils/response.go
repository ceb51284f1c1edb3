package utils

import (
	"encoding/json"
	"net/http"
)

// WriteJSON serializes payload as the response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// WriteError answers with the flat {"error": message} failure body used by
// every route.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]string{"error": message})
}

// WriteMsg answers with the flat {"msg": text} confirmation body used by
// delete and reset routes.
func WriteMsg(w http.ResponseWriter, status int, text string) {
	WriteJSON(w, status, map[string]string{"msg": text})
}
