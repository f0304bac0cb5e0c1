package api

import (
	"net/http"
	"strconv"

	"github.com/stratus-io/stratus/internal/audit"
)

// SearchLogs returns a filtered, paginated view of the audit trail.
func (h *Handler) SearchLogs(w http.ResponseWriter, r *http.Request) {
	q := audit.Query{
		Actor:    r.URL.Query().Get("actor"),
		Action:   r.URL.Query().Get("action"),
		Target:   r.URL.Query().Get("target"),
		Provider: r.URL.Query().Get("provider"),
	}
	if raw := r.URL.Query().Get("success"); raw != "" {
		success, err := strconv.ParseBool(raw)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "success must be true or false")
			return
		}
		q.Success = &success
	}
	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			h.writeError(w, http.StatusBadRequest, "page must be a positive integer")
			return
		}
		q.Page = page
	}
	if raw := r.URL.Query().Get("page_size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 {
			h.writeError(w, http.StatusBadRequest, "page_size must be a positive integer")
			return
		}
		q.PageSize = size
	}

	page, err := h.audit.Search(q)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"entries":   page.Entries,
		"total":     page.Total,
		"page":      page.PageNumber,
		"page_size": page.PageSize,
	})
}

// RecentLogs returns the newest audit entries.
func (h *Handler) RecentLogs(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			h.writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	entries, err := h.audit.Recent(limit)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"entries": entries,
		"count":   len(entries),
	})
}
