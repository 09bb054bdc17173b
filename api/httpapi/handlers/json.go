package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/odpf/salt/log"
)

// ErrorResponse is the error payload shape the UI expects.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("content-type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// headers are already out; nothing left to do but log
		log.NewLogrus().Error(fmt.Sprintf("error encoding response to json: %v", err))
	}
}

func WriteJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, &ErrorResponse{
		Detail: msg,
	})
}

func internalServerError(w http.ResponseWriter, logger log.Logger, msg string) {
	ref := time.Now().Unix()
	logger.Error(fmt.Sprintf("ref (%d): %s", ref, msg))
	WriteJSONError(w, http.StatusInternalServerError, fmt.Sprintf(
		"%s - ref (%d)",
		http.StatusText(http.StatusInternalServerError),
		ref,
	))
}
