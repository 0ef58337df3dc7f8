package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	contactapi "github.com/lawai/consult-backend/internal/api/contact"
	"github.com/lawai/consult-backend/internal/api/docs"
	interviewapi "github.com/lawai/consult-backend/internal/api/interview"
	"github.com/lawai/consult-backend/internal/api/middleware"
)

// SetupRouter creates and configures the HTTP router.
func SetupRouter(interviewHandler *interviewapi.Handler, contactHandler *contactapi.Handler, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS)
	// Opinion generation chains several model calls; keep the timeout generous.
	r.Use(chimiddleware.Timeout(120 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	docs.RegisterRoutes(r)

	interviewapi.RegisterRoutes(r, interviewHandler)
	contactapi.RegisterRoutes(r, contactHandler)

	return r
}
