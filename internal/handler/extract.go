package handler

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/YannKr/watermarkengine/internal/watermark"
)

// Extract handles POST /api/v1/extract: a multipart form with fields
// "file" (the watermarked image) and "method" (lsb|dct|dwt|robust).
func (h *Handler) Extract(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadBytes); err != nil {
		renderJSONError(w, http.StatusBadRequest, "BAD_REQUEST", "failed to parse multipart form")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		renderJSONError(w, http.StatusBadRequest, "BAD_REQUEST", "missing 'file' field in form")
		return
	}
	defer file.Close()

	method, err := watermark.ParseMethod(r.FormValue("method"))
	if err != nil {
		renderJSONError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	imgBytes, err := io.ReadAll(file)
	if err != nil {
		renderJSONError(w, http.StatusBadRequest, "BAD_REQUEST", "failed to read uploaded file")
		return
	}

	text, err := watermark.Extract(imgBytes, method)
	if err != nil {
		slog.Error("extract failed", "request_id", requestIDFromContext(r.Context()), "method", method, "error", err)
		renderJSONError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	renderJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"text":    text,
	})
}
