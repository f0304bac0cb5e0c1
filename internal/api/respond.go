package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/stratus-io/stratus/internal/cloud"
	"github.com/stratus-io/stratus/internal/store"
)

// writeJSON writes a response envelope with success set to true.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	if _, ok := data["success"]; !ok {
		data["success"] = true
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error envelope.
func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   message,
	})
}

// writeEngineError maps domain errors onto HTTP statuses: bad requests for
// catalog violations, 404 for unknown records, 500 otherwise.
func (h *Handler) writeEngineError(w http.ResponseWriter, err error) {
	var (
		unsupported *cloud.UnsupportedProviderError
		missing     *cloud.MissingFieldError
		invalid     *cloud.InvalidValueError
	)
	switch {
	case errors.As(err, &unsupported), errors.As(err, &missing), errors.As(err, &invalid):
		h.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrNotFound):
		h.writeError(w, http.StatusNotFound, err.Error())
	default:
		h.writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// writeVMError maps lifecycle and update failures: unknown ids are 404,
// every other rejection is the caller's fault.
func (h *Handler) writeVMError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		h.writeError(w, http.StatusNotFound, err.Error())
		return
	}
	h.writeError(w, http.StatusBadRequest, err.Error())
}

// actor identifies the requester for the audit trail. The legacy surface
// passes it as a header; infrastructure requests carry it in the body.
func actor(r *http.Request) string {
	if who := r.Header.Get("X-Requested-By"); who != "" {
		return who
	}
	return "anonymous"
}
