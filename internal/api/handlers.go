package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/stratus-io/stratus/internal/cloud"
)

// CreateInfrastructure provisions a resource group from a JSON request.
func (h *Handler) CreateInfrastructure(w http.ResponseWriter, r *http.Request) {
	var req cloud.Request
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
	if req.RequestedBy == "" {
		req.RequestedBy = actor(r)
	}

	start := time.Now()
	infra, err := h.engine.CreateInfrastructure(r.Context(), req)
	if h.metrics != nil {
		h.metrics.observeProvision(req.Provider, err, time.Since(start).Seconds())
	}
	if err != nil {
		h.writeEngineError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, map[string]any{
		"infrastructure": infra,
	})
}

// ListInfrastructures returns every provisioned group, oldest first.
func (h *Handler) ListInfrastructures(w http.ResponseWriter, r *http.Request) {
	infras := h.engine.ListInfrastructures()
	h.writeJSON(w, http.StatusOK, map[string]any{
		"infrastructures": infras,
		"count":           len(infras),
	})
}

// GetInfrastructure returns one provisioned group by id.
func (h *Handler) GetInfrastructure(w http.ResponseWriter, r *http.Request) {
	infra, err := h.engine.GetInfrastructure(chi.URLParam(r, "id"))
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"infrastructure": infra})
}

// DeleteInfrastructure tears down one provisioned group.
func (h *Handler) DeleteInfrastructure(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.engine.DeleteInfrastructure(r.Context(), id, actor(r)); err != nil {
		h.writeEngineError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"message": "infrastructure " + id + " deleted",
	})
}

// ListProviders returns the registered provider tags.
func (h *Handler) ListProviders(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{
		"providers": h.engine.Providers(),
	})
}

// GetProvider returns the simulated service offering of one provider.
func (h *Handler) GetProvider(w http.ResponseWriter, r *http.Request) {
	info, err := h.engine.ProviderInfo(chi.URLParam(r, "provider"))
	if err != nil {
		h.writeError(w, http.StatusNotFound, err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"provider": info})
}
