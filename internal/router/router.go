package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/factism001/revogreen-ai-electrician/internal/handlers"
	"github.com/factism001/revogreen-ai-electrician/internal/middleware"
)

func New(h *handlers.Handler, frontendURL string) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/electrical-advice", h.Liveness("Electrical advice"))
		r.Post("/electrical-advice", h.ElectricalAdvice)

		r.Get("/troubleshooting-advice", h.Liveness("Troubleshooting advice"))
		r.Post("/troubleshooting-advice", h.TroubleshootingAdvice)

		r.Get("/accessory-recommendation", h.Liveness("Accessory recommendation"))
		r.Post("/accessory-recommendation", h.AccessoryRecommendation)

		r.Get("/energy-savings-estimator", h.Liveness("Energy savings estimator"))
		r.Post("/energy-savings-estimator", h.EnergySavingsEstimate)

		r.Get("/project-planner", h.Liveness("Project planner"))
		r.Post("/project-planner", h.ProjectPlan)
	})

	return r
}
