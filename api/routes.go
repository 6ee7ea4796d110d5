package api

import (
	"github.com/go-chi/chi/v5"
)

// setupSiteRoutes sets up the public routes used by the marketing site
func setupSiteRoutes(r chi.Router, handlers *routeHandlers) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Project Handler endpoints
		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/project/{projectID}", handlers.projectHandler.getProject())
		r.Get("/project/{projectID}/comments", handlers.projectHandler.getComments())
		r.Post("/project/{projectID}/comments", handlers.projectHandler.addComment())

		// Contact Handler endpoints
		r.Post("/contact/validate", handlers.contactHandler.validateField())
		r.Post("/contact", handlers.contactHandler.submit())
		r.Get("/contact/whatsapp", handlers.contactHandler.whatsAppLink())

		// Site Handler endpoints
		r.Get("/highlights", handlers.siteHandler.getHighlights())
		r.Get("/health", handlers.siteHandler.health())
	})
}
