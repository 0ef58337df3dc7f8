package interview

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers consultation session routes.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/consult-session", func(r chi.Router) {
		r.Post("/", h.StartSession)
		r.Get("/{id}", h.GetSession)
		r.Post("/{id}/input", h.SubmitInput)
		r.Post("/{id}/legal-path", h.SelectLegalPath)
		r.Post("/{id}/scenario", h.ConfirmScenario)
		r.Post("/{id}/answer", h.SubmitAnswer)
		r.Post("/{id}/back", h.StepBack)
		r.Post("/{id}/disclaimer", h.AcceptDisclaimer)
		r.Get("/{id}/opinion", h.GetOpinion)
		r.Post("/{id}/restart", h.Restart)
	})
}
