package api

import (
	"net/http"
	"time"
)

func (h *Handler) getRoot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// ServeMux routes every unknown path here
	if r.URL.Path != "/" {
		h.writeDetail(ctx, w, http.StatusNotFound, "Not Found")
		return
	}

	h.writeJSON(ctx, w, http.StatusOK, map[string]interface{}{
		"message":     "Hello World!",
		"description": h.Config.App.Description,
		"website":     h.Config.App.Website,
		"repo":        h.Config.App.Repo,
		"docs":        h.Config.App.DocsUrl,
		"version":     h.Config.App.Version,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) getHealth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	h.writeJSON(ctx, w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"message":   "API is running",
		"version":   h.Config.App.Version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"repo":      h.Config.App.Repo,
	})
}
