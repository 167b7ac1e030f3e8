package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (s *Server) routes() {
	r := s.router

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(s.recoverer)
	r.Use(s.opts.CORS.handler())

	r.NotFound(s.handleNotFound)
	r.MethodNotAllowed(s.handleNotFound)

	r.Get("/", s.handleBanner)

	r.Route("/api", func(r chi.Router) {
		r.Route("/leads", func(r chi.Router) {
			r.Get("/", s.handleListLeads)
			r.Post("/", s.handleCreateLead)
			r.Get("/{id}", s.handleGetLead)
			r.Put("/{id}", s.handleUpdateLead)
			r.Delete("/{id}", s.handleDeleteLead)
		})

		r.Route("/applications", func(r chi.Router) {
			r.Get("/", s.handleListApplications)
			r.Post("/", s.handleCreateApplication)
			r.Get("/{id}", s.handleGetApplication)
			r.Put("/{id}", s.handleUpdateApplication)
			r.Delete("/{id}", s.handleDeleteApplication)
		})

		r.Get("/criteria", s.handleGetCriteria)
		r.Put("/criteria", s.handleSaveCriteria)

		r.Get("/stats", s.handleStats)

		r.Post("/trigger/search", s.handleTriggerSearch)
		r.Post("/trigger/schedule", s.handleTriggerSchedule)
		r.Post("/trigger/track", s.handleTriggerTrack)
	})
}
