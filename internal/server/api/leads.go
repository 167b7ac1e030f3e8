package api

import (
	"errors"
	"net/http"

	"github.com/scholarshipops/scholarshipops/internal/common"
	"github.com/scholarshipops/scholarshipops/internal/server/models"
)

type leadResponse struct {
	Lead *models.Lead `json:"lead"`
}

func (s *Server) handleListLeads(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := &models.LeadFilter{
		Status: q.Get("status"),
		Bucket: q.Get("bucket"),
		Search: q.Get("search"),
	}

	leads, err := s.leads.List(r.Context(), filter)
	if err != nil {
		s.writeStoreError(w, r, "Failed to get leads", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"leads": leads})
}

func (s *Server) handleGetLead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid ID")
		return
	}

	lead, err := s.leads.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "Lead not found")
			return
		}
		s.writeStoreError(w, r, "Failed to get lead", err)
		return
	}

	writeJSON(w, http.StatusOK, leadResponse{Lead: lead})
}

func (s *Server) handleCreateLead(w http.ResponseWriter, r *http.Request) {
	var in models.LeadInput
	if details := decodeBody(w, r, &in, func() []FieldError { return requireField("name", in.Name) }); len(details) > 0 {
		s.writeValidationError(w, r, details)
		return
	}

	lead, err := s.leads.Create(r.Context(), &in)
	if err != nil {
		s.writeStoreError(w, r, "Failed to create lead", err)
		return
	}

	s.logger.Info(r.Context(), "lead created", "id", lead.ID)
	writeJSON(w, http.StatusCreated, leadResponse{Lead: lead})
}

func (s *Server) handleUpdateLead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid ID")
		return
	}

	var in models.LeadInput
	if details := decodeBody(w, r, &in, nil); len(details) > 0 {
		s.writeValidationError(w, r, details)
		return
	}

	lead, err := s.leads.Update(r.Context(), id, &in)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "Lead not found")
			return
		}
		s.writeStoreError(w, r, "Failed to update lead", err)
		return
	}

	writeJSON(w, http.StatusOK, leadResponse{Lead: lead})
}

func (s *Server) handleDeleteLead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid ID")
		return
	}

	removed, err := s.leads.Delete(r.Context(), id)
	if err != nil {
		s.writeStoreError(w, r, "Failed to delete lead", err)
		return
	}
	if !removed {
		writeError(w, http.StatusNotFound, "Lead not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
