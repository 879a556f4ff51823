package router

import (
	"github.com/go-chi/chi/v5"

	"github.com/trunov/rawhub/internal/transport/handler"
)

func NewRouter(h *handler.Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/generate-thumbnail", h.GenerateThumbnail)
	r.Post("/generate-high-quality-jpeg", h.GenerateHighQualityJPEG)
	r.Post("/generate-baseline-jpeg", h.GenerateBaselineJPEG)
	r.Post("/generate-webp-preview", h.GenerateWebPPreview)
	r.Get("/health", h.Health)

	return r
}
