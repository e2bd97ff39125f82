package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logrus.Errorf("failed to encode JSON response: %v", err)
	}
}

func respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	reqID := middleware.GetReqID(r.Context())
	logrus.WithFields(logrus.Fields{
		"status":     status,
		"path":       r.URL.Path,
		"request_id": reqID,
	}).Debugf("sending error response: %s", message)
	respondJSON(w, status, ErrorResponse{Error: message, RequestID: reqID})
}
