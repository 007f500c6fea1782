package handler

import "net/http"

// Health handles GET /api/v1/health. Unlike the Python original, which
// reported whether optional imports like pywt/stegano/opencv were
// installed, this engine's transforms are all in-module Go code with no
// optional native dependency — every method is always available.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"methods": map[string]bool{
			"lsb":    true,
			"dct":    true,
			"dwt":    true,
			"robust": true,
		},
	})
}
