// Package services contains server-side business logic. Each service reads
// and writes through repositories vended by a repomanager.RepositoryManager
// bound to the shared *sql.DB.
package services

import (
	"context"
	"database/sql"

	"github.com/scholarshipops/scholarshipops/internal/server/models"
	"github.com/scholarshipops/scholarshipops/internal/server/repositories/repomanager"
)

// LeadService exposes CRUD over scholarship leads.
type LeadService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewLeadService(db *sql.DB, m repomanager.RepositoryManager) *LeadService {
	return &LeadService{db: db, repomanager: m}
}

// List returns leads matching filter, best match first. A nil or empty
// filter lists everything.
func (s *LeadService) List(ctx context.Context, filter *models.LeadFilter) ([]*models.Lead, error) {
	if filter.IsZero() {
		filter = nil
	}
	return s.repomanager.Leads(s.db).List(ctx, filter)
}

// Get returns common.ErrorNotFound when no lead has id.
func (s *LeadService) Get(ctx context.Context, id int64) (*models.Lead, error) {
	return s.repomanager.Leads(s.db).GetByID(ctx, id)
}

func (s *LeadService) Create(ctx context.Context, in *models.LeadInput) (*models.Lead, error) {
	return s.repomanager.Leads(s.db).Create(ctx, in)
}

// Update merges the provided fields into the stored lead.
func (s *LeadService) Update(ctx context.Context, id int64, in *models.LeadInput) (*models.Lead, error) {
	return s.repomanager.Leads(s.db).Update(ctx, id, in)
}

// Delete reports whether a lead was removed.
func (s *LeadService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repomanager.Leads(s.db).Delete(ctx, id)
}
