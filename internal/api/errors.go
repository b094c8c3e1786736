package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/nauticalab/tsconfig-engine/pkg/tsconfig"
)

// respondJSON sends a JSON response with the given status code
func respondJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			log.Printf("Error encoding JSON response: %v", err)
		}
	}
}

// respondError sends an error response in JSON format
func respondError(w http.ResponseWriter, code int, message string) {
	respondJSON(w, code, ErrorResponse{
		Error:   http.StatusText(code),
		Message: message,
		Code:    code,
	})
}

// respondBadRequest sends a 400 Bad Request error
func respondBadRequest(w http.ResponseWriter, message string) {
	respondError(w, http.StatusBadRequest, message)
}

// respondTooLarge sends a 413 Request Entity Too Large error
func respondTooLarge(w http.ResponseWriter, message string) {
	respondError(w, http.StatusRequestEntityTooLarge, message)
}

// respondParseError sends a 422 Unprocessable Entity describing a parse
// failure. Unclassified errors become a 500.
func respondParseError(w http.ResponseWriter, err error) {
	var perr *tsconfig.Error
	if !errors.As(err, &perr) {
		log.Printf("Unclassified parse error: %v", err)
		respondInternalError(w, "Failed to parse document")
		return
	}

	code := http.StatusUnprocessableEntity
	respondJSON(w, code, ErrorResponse{
		Error:    http.StatusText(code),
		Message:  perr.Error(),
		Code:     code,
		Category: string(perr.Category),
		Field:    perr.Field,
		Token:    perr.Token,
		Expected: perr.Expected,
		Line:     perr.Line,
		Column:   perr.Column,
	})
}

// respondInternalError sends a 500 Internal Server Error
func respondInternalError(w http.ResponseWriter, message string) {
	respondError(w, http.StatusInternalServerError, message)
}

// respondSuccess sends a 200 OK with payload
func respondSuccess(w http.ResponseWriter, payload interface{}) {
	respondJSON(w, http.StatusOK, payload)
}
