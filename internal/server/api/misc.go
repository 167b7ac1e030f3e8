package api

import (
	"net/http"

	"github.com/scholarshipops/scholarshipops/internal/server/models"
	"github.com/scholarshipops/scholarshipops/internal/server/services"
)

func (s *Server) handleBanner(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": serviceName,
		"version": serviceVersion,
		"status":  "ok",
	})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Not found")
}

func (s *Server) handleGetCriteria(w http.ResponseWriter, r *http.Request) {
	c, err := s.criteria.Get(r.Context())
	if err != nil {
		s.writeStoreError(w, r, "Failed to get criteria", err)
		return
	}

	// nil encodes as {"criteria": null}
	writeJSON(w, http.StatusOK, map[string]*models.Criteria{"criteria": c})
}

func (s *Server) handleSaveCriteria(w http.ResponseWriter, r *http.Request) {
	var in models.CriteriaInput
	if details := decodeBody(w, r, &in, nil); len(details) > 0 {
		s.writeValidationError(w, r, details)
		return
	}

	c, err := s.criteria.Save(r.Context(), &in)
	if err != nil {
		s.writeStoreError(w, r, "Failed to update criteria", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]*models.Criteria{"criteria": c})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	st, err := s.stats.Get(r.Context())
	if err != nil {
		s.writeStoreError(w, r, "Failed to get stats", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]*models.Stats{"stats": st})
}

func (s *Server) handleTriggerSearch(w http.ResponseWriter, r *http.Request) {
	writeTrigger(w, s.triggers.Search(r.Context()))
}

func (s *Server) handleTriggerSchedule(w http.ResponseWriter, r *http.Request) {
	writeTrigger(w, s.triggers.Schedule(r.Context()))
}

func (s *Server) handleTriggerTrack(w http.ResponseWriter, r *http.Request) {
	writeTrigger(w, s.triggers.Track(r.Context()))
}

func writeTrigger(w http.ResponseWriter, res *services.TriggerResult) {
	writeJSON(w, http.StatusAccepted, res)
}
