package handler

import (
	"io"
	"net/http"

	"github.com/YannKr/watermarkengine/internal/watermark"
)

// EmbedLogo handles POST /api/v1/embed-logo: a multipart form with fields
// "file", "logo", "position" (default bottom-right), "opacity" (default
// 0.7), and "size" (default 0.1, fraction of the base image's width).
func (h *Handler) EmbedLogo(w http.ResponseWriter, r *http.Request) {
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

	logoFile, _, err := r.FormFile("logo")
	if err != nil {
		renderJSONError(w, http.StatusBadRequest, "BAD_REQUEST", "missing 'logo' field in form")
		return
	}
	defer logoFile.Close()

	position := formValueOr(r, "position", "bottom-right")
	opacity := formFloatOr(r, "opacity", 0.7)
	size := formFloatOr(r, "size", 0.1)

	imgBytes, err := io.ReadAll(file)
	if err != nil {
		renderJSONError(w, http.StatusBadRequest, "BAD_REQUEST", "failed to read uploaded file")
		return
	}
	logoBytes, err := io.ReadAll(logoFile)
	if err != nil {
		renderJSONError(w, http.StatusBadRequest, "BAD_REQUEST", "failed to read uploaded logo")
		return
	}

	img, err := watermark.DecodeImage(imgBytes)
	if err != nil {
		renderJSONError(w, http.StatusBadRequest, "BAD_REQUEST", "failed to decode image")
		return
	}
	logo, err := watermark.DecodeImage(logoBytes)
	if err != nil {
		renderJSONError(w, http.StatusBadRequest, "BAD_REQUEST", "failed to decode logo")
		return
	}

	out := watermark.EmbedLogo(img, logo, position, opacity, size)
	png, err := watermark.EncodePNG(out)
	if err != nil {
		renderJSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to encode result")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
