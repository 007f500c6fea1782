package handler

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/YannKr/watermarkengine/internal/watermark"
)

// Embed handles POST /api/v1/embed: a multipart form with fields "file"
// (the source image), "text" (payload), and "method" (lsb|dct|dwt|robust).
func (h *Handler) Embed(w http.ResponseWriter, r *http.Request) {
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

	text := r.FormValue("text")
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

	out, err := watermark.Embed(imgBytes, text, method)
	if err != nil {
		slog.Error("embed failed", "request_id", requestIDFromContext(r.Context()), "method", method, "error", err)
		renderJSONError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(out)
}
