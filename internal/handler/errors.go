package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"weddingsite/internal/service"
)

// Response is the envelope of every JSON answer.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// WriteError sends {"success": false, "error": message}.
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	writeJSON(w, Response{Success: false, Error: message}, statusCode)
}

// WriteSuccess sends {"success": true, "data": data}.
func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	writeJSON(w, Response{Success: true, Data: data}, statusCode)
}

func writeJSON(w http.ResponseWriter, body Response, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

// writeServiceError maps service errors to status codes. Unknown errors are
// logged and reported as 500 without details.
func (h *Handlers) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var svcErr service.ServiceError
	if !errors.As(err, &svcErr) {
		h.Log.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	switch svcErr {
	case service.ErrNotFound:
		WriteError(w, err.Error(), http.StatusNotFound)
	case service.ErrInvalidPassword, service.ErrUnauthorized:
		WriteError(w, err.Error(), http.StatusUnauthorized)
	case service.ErrFileTooLarge:
		WriteError(w, err.Error(), http.StatusRequestEntityTooLarge)
	case service.ErrUnsupportedMedia:
		WriteError(w, err.Error(), http.StatusUnsupportedMediaType)
	default:
		WriteError(w, err.Error(), http.StatusBadRequest)
	}
}
