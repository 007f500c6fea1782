package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/YannKr/watermarkengine/internal/watermark"
)

// EmbedVisible handles POST /api/v1/embed-visible: a multipart form with
// fields "file", "text", "position" (default bottom-right), and "opacity"
// (default 0.5).
func (h *Handler) EmbedVisible(w http.ResponseWriter, r *http.Request) {
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
	position := formValueOr(r, "position", "bottom-right")
	opacity := formFloatOr(r, "opacity", 0.5)

	imgBytes, err := io.ReadAll(file)
	if err != nil {
		renderJSONError(w, http.StatusBadRequest, "BAD_REQUEST", "failed to read uploaded file")
		return
	}

	img, err := watermark.DecodeImage(imgBytes)
	if err != nil {
		renderJSONError(w, http.StatusBadRequest, "BAD_REQUEST", "failed to decode image")
		return
	}

	out := watermark.EmbedVisible(img, text, position, opacity)
	png, err := watermark.EncodePNG(out)
	if err != nil {
		renderJSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to encode result")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func formValueOr(r *http.Request, key, fallback string) string {
	if v := r.FormValue(key); v != "" {
		return v
	}
	return fallback
}

func formFloatOr(r *http.Request, key string, fallback float64) float64 {
	if v := r.FormValue(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
