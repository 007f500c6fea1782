// Package handler is the thin HTTP adapter in front of the watermarking
// engine: it parses multipart/JSON requests, calls into
// internal/watermark, and renders the result. It holds no state of its own.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/YannKr/watermarkengine/internal/config"
)

type Handler struct {
	Cfg *config.Config
}

func New(cfg *config.Config) *Handler {
	return &Handler{Cfg: cfg}
}

func renderJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func renderJSONError(w http.ResponseWriter, status int, code, message string) {
	renderJSON(w, status, map[string]any{
		"success": false,
		"error":   message,
		"code":    code,
	})
}
