package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// sendJSON writes a JSON body with the shared response headers.
// Reaction and view state changes on every toggle, so shared and proxy
// caches must never serve it.
func sendJSON(w http.ResponseWriter, r *http.Request, logger *logrus.Entry, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		logger.WithFields(logrus.Fields{
			"method":      r.Method,
			"remote_addr": r.RemoteAddr,
			"url":         r.URL.Path,
			"status_code": http.StatusInternalServerError,
		}).Error("unable send json to client: ", err)
		return
	}

	logger.WithFields(logrus.Fields{
		"method":      r.Method,
		"remote_addr": r.RemoteAddr,
		"url":         r.URL.Path,
		"status_code": status,
	}).Info()
}

func sendError(w http.ResponseWriter, r *http.Request, logger *logrus.Entry, status int, message string) {
	sendJSON(w, r, logger, status, ErrorResponse{Error: message})
}
