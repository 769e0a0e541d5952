package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-w3s-wallet/models"
)

// WriteJSON serializes data to JSON and writes it to w with the given status
// code and an "application/json" content type.
//
// If marshaling fails, it responds with 500 Internal Server Error and returns
// a wrapped error.
//
//	WriteJSON(w, wallets, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes the backend's {code, message} error payload.
func WriteError(w http.ResponseWriter, statusCode int, code models.ErrorCode, message string) (int, error) {
	return WriteJSON(w, models.ErrorResponse{Code: code, Message: message}, statusCode)
}
