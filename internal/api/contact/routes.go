package contact

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers the lawyer-contact route.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/contact", h.Submit)
}
