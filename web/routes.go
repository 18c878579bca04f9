package web

import (
	"recipesearch/web/api"

	"github.com/rohanthewiz/rweb"
)

// setupRoutes configures all application routes
func setupRoutes(s *rweb.Server, app *App, searchAPI *api.SearchAPI) {
	// Page routes - HTML responses
	s.Get("/", app.HomePage)
	s.Post("/query", app.SetQuery)        // Mirror typed text
	s.Post("/example", app.SelectExample) // Example chip
	s.Post("/search", app.SubmitSearch)   // Form submission
	s.Get("/partials/results", app.ResultsPartial)

	// API v1 routes - JSON (or msgpack) responses
	s.Get("/api/v1/search", searchAPI.Search)
	s.Get("/api/v1/examples", searchAPI.Examples)
	s.Get("/api/v1/state", searchAPI.State)
	s.Get("/api/v1/health", api.Health)
}
