package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Routes builds the chi router for the engine's HTTP adapter: logging and
// recovery middleware, configurable CORS, and a rate-limited API group.
func (h *Handler) Routes(rl *RateLimiter) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(requestID)
	r.Use(h.cors)

	r.Get("/api/v1/health", h.Health)

	r.Group(func(r chi.Router) {
		r.Use(rl.Middleware)
		r.Post("/api/v1/embed", h.Embed)
		r.Post("/api/v1/extract", h.Extract)
		r.Post("/api/v1/embed-visible", h.EmbedVisible)
		r.Post("/api/v1/embed-logo", h.EmbedLogo)
	})

	return r
}

func (h *Handler) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.Cfg.CORSOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
