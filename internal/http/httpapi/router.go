package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"phi/internal/http/handlers"
	"phi/internal/infra"
	"phi/internal/middleware"
)

// NewRouter assembles the middleware chain and the versioned API surface.
func NewRouter(app *handlers.App, cfg *infra.Config, logger zerolog.Logger, country middleware.CountryLookup) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORSOrigins),
		middleware.I18N(app.Store.Lang, country),
		middleware.RateLimit(cfg.RateLimitPerMin, time.Minute),
	)

	r.Get("/v1/healthz", app.Health)

	r.Route("/v1/auth", func(r chi.Router) {
		r.Post("/login", app.Login)
		r.Post("/logout", app.Logout)
		r.Get("/me", app.Me)
	})

	r.Route("/v1/session", func(r chi.Router) {
		r.Get("/", app.Session)
		r.Post("/view", app.Navigate)
		r.Post("/lang", app.SetLang)
	})

	r.Get("/v1/plans", app.Plans)

	r.Route("/v1/admin", func(r chi.Router) {
		r.Get("/users", app.ListUsers)
		r.Post("/users", app.CreateUser)
		r.Put("/users/{id}", app.UpdateUser)
		r.Delete("/users/{id}", app.DeleteUser)
		r.Put("/branding", app.UpdateBranding)
		r.Put("/plans", app.ReplacePlans)
		r.Put("/subscription-url", app.UpdateSubscriptionURL)
	})

	r.Route("/v1/tools", func(r chi.Router) {
		r.Post("/cv", app.ReviewCV)
		r.Post("/sop", app.ReviewSOP)
		r.Post("/certificates", app.DescribeCertificate)
		r.Get("/interview/question", app.InterviewQuestion)
		r.Post("/interview/feedback", app.InterviewFeedback)
	})

	r.Route("/v1/scholarships", func(r chi.Router) {
		r.Get("/top", app.TopScholarships)
		r.Post("/search", app.SearchScholarships)
		r.Get("/filters", app.ScholarshipFilters)
	})

	return r
}
