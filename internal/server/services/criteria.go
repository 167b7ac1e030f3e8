package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/scholarshipops/scholarshipops/internal/common"
	"github.com/scholarshipops/scholarshipops/internal/server/models"
	"github.com/scholarshipops/scholarshipops/internal/server/repositories/repomanager"
)

type CriteriaService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCriteriaService(db *sql.DB, m repomanager.RepositoryManager) *CriteriaService {
	return &CriteriaService{db: db, repomanager: m}
}

// Get returns the stored criteria, or nil when none has been saved yet.
func (s *CriteriaService) Get(ctx context.Context) (*models.Criteria, error) {
	c, err := s.repomanager.Criteria(s.db).Get(ctx)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

// Save creates or updates the criteria row. Documents absent from in keep
// their stored value.
func (s *CriteriaService) Save(ctx context.Context, in *models.CriteriaInput) (*models.Criteria, error) {
	c, err := in.Encode()
	if err != nil {
		return nil, fmt.Errorf("error encoding criteria: %w", err)
	}
	return s.repomanager.Criteria(s.db).Upsert(ctx, c)
}
