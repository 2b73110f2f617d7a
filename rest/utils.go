package rest

import (
	"encoding/json"
	"net/http"
)

const (
	statusSuccess = "Success"
	statusFailure = "Failure"
)

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

func respondWithValidationError(errors map[string]string, w http.ResponseWriter) {
	respondWithJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": errors})
}

// respondWithFailure reports a failure-shaped result. These are business
// failures, not transport errors, so the status code stays 200.
func respondWithFailure(w http.ResponseWriter, message string) {
	respondWithJSON(w, http.StatusOK, map[string]string{"message": message, "Response": statusFailure})
}

func respondWithSuccess(w http.ResponseWriter, message string) {
	respondWithJSON(w, http.StatusOK, map[string]string{"message": message, "Response": statusSuccess})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}
