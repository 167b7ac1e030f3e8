package api

import (
	"errors"
	"net/http"

	"github.com/scholarshipops/scholarshipops/internal/common"
	"github.com/scholarshipops/scholarshipops/internal/server/models"
)

type applicationResponse struct {
	Application *models.Application `json:"application"`
}

func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	apps, err := s.applications.List(r.Context())
	if err != nil {
		s.writeStoreError(w, r, "Failed to get applications", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"applications": apps})
}

func (s *Server) handleGetApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid ID")
		return
	}

	app, err := s.applications.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "Application not found")
			return
		}
		s.writeStoreError(w, r, "Failed to get application", err)
		return
	}

	writeJSON(w, http.StatusOK, applicationResponse{Application: app})
}

func (s *Server) handleCreateApplication(w http.ResponseWriter, r *http.Request) {
	var in models.ApplicationInput
	if details := decodeBody(w, r, &in, func() []FieldError { return requireField("name", in.Name) }); len(details) > 0 {
		s.writeValidationError(w, r, details)
		return
	}

	app, err := s.applications.Create(r.Context(), &in)
	if err != nil {
		s.writeStoreError(w, r, "Failed to create application", err)
		return
	}

	s.logger.Info(r.Context(), "application created", "id", app.ID)
	writeJSON(w, http.StatusCreated, applicationResponse{Application: app})
}

func (s *Server) handleUpdateApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid ID")
		return
	}

	var in models.ApplicationInput
	if details := decodeBody(w, r, &in, nil); len(details) > 0 {
		s.writeValidationError(w, r, details)
		return
	}

	app, err := s.applications.Update(r.Context(), id, &in)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "Application not found")
			return
		}
		s.writeStoreError(w, r, "Failed to update application", err)
		return
	}

	writeJSON(w, http.StatusOK, applicationResponse{Application: app})
}

func (s *Server) handleDeleteApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid ID")
		return
	}

	removed, err := s.applications.Delete(r.Context(), id)
	if err != nil {
		s.writeStoreError(w, r, "Failed to delete application", err)
		return
	}
	if !removed {
		writeError(w, http.StatusNotFound, "Application not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
