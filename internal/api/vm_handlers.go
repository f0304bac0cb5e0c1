package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/stratus-io/stratus/internal/cloud"
)

// vmCreateRequest is the body for the legacy standalone VM endpoint.
type vmCreateRequest struct {
	Provider string       `json:"provider"`
	Name     string       `json:"name"`
	Config   cloud.Config `json:"config"`
}

// vmActionRequest selects a lifecycle action.
type vmActionRequest struct {
	Action string `json:"action"`
}

// CreateVM provisions a standalone VM.
func (h *Handler) CreateVM(w http.ResponseWriter, r *http.Request) {
	var req vmCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Provider == "" {
		h.writeError(w, http.StatusBadRequest, "provider is required")
		return
	}
	if req.Name == "" {
		h.writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	start := time.Now()
	vm, err := h.engine.CreateVM(r.Context(), req.Provider, req.Name, req.Config, actor(r))
	if h.metrics != nil {
		h.metrics.observeProvision(req.Provider, err, time.Since(start).Seconds())
	}
	if err != nil {
		h.writeEngineError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, map[string]any{"vm": vm})
}

// ListVMs returns every standalone VM.
func (h *Handler) ListVMs(w http.ResponseWriter, r *http.Request) {
	vms := h.engine.ListVMs()
	h.writeJSON(w, http.StatusOK, map[string]any{
		"vms":   vms,
		"count": len(vms),
	})
}

// GetVM returns one standalone VM by id.
func (h *Handler) GetVM(w http.ResponseWriter, r *http.Request) {
	vm, err := h.engine.GetVM(chi.URLParam(r, "id"))
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"vm": vm})
}

// UpdateVM applies a partial update to a standalone VM.
func (h *Handler) UpdateVM(w http.ResponseWriter, r *http.Request) {
	var upd cloud.VMUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	vm, err := h.engine.UpdateVM(r.Context(), chi.URLParam(r, "id"), upd, actor(r))
	if err != nil {
		h.writeVMError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"vm": vm})
}

// DeleteVM removes a standalone VM.
func (h *Handler) DeleteVM(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.engine.DeleteVM(r.Context(), id, actor(r)); err != nil {
		h.writeEngineError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"message": "vm " + id + " deleted",
	})
}

// VMAction runs start, stop or restart against a standalone VM.
func (h *Handler) VMAction(w http.ResponseWriter, r *http.Request) {
	var req vmActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	vm, err := h.engine.ApplyVMAction(r.Context(), chi.URLParam(r, "id"), req.Action, actor(r))
	if err != nil {
		h.writeVMError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"vm": vm})
}
