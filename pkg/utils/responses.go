package utils

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the failure envelope shared by every endpoint.
type ErrorBody struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// ResponseJSON writes payload as JSON with the given status code.
func ResponseJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, payload any) {
	ResponseJSON(w, http.StatusOK, payload)
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, payload any) {
	ResponseJSON(w, http.StatusCreated, payload)
}

// ------------- Error responses -------------

func ResponseError(w http.ResponseWriter, code int, message string, details any) {
	ResponseJSON(w, code, ErrorBody{Error: message, Details: details})
}

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string, details any) {
	ResponseError(w, http.StatusBadRequest, message, details)
}

// returns 401 Unauthorized
func ResponseUnauthorized(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusUnauthorized, message, nil)
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusNotFound, message, nil)
}

// returns 409 Conflict
func ResponseConflict(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusConflict, message, nil)
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusInternalServerError, message, nil)
}
