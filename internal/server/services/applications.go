package services

import (
	"context"
	"database/sql"

	"github.com/scholarshipops/scholarshipops/internal/server/models"
	"github.com/scholarshipops/scholarshipops/internal/server/repositories/repomanager"
)

type ApplicationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewApplicationService(db *sql.DB, m repomanager.RepositoryManager) *ApplicationService {
	return &ApplicationService{db: db, repomanager: m}
}

// List returns every application, newest first.
func (s *ApplicationService) List(ctx context.Context) ([]*models.Application, error) {
	return s.repomanager.Applications(s.db).List(ctx)
}

func (s *ApplicationService) Get(ctx context.Context, id int64) (*models.Application, error) {
	return s.repomanager.Applications(s.db).GetByID(ctx, id)
}

func (s *ApplicationService) Create(ctx context.Context, in *models.ApplicationInput) (*models.Application, error) {
	return s.repomanager.Applications(s.db).Create(ctx, in)
}

func (s *ApplicationService) Update(ctx context.Context, id int64, in *models.ApplicationInput) (*models.Application, error) {
	return s.repomanager.Applications(s.db).Update(ctx, id, in)
}

func (s *ApplicationService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repomanager.Applications(s.db).Delete(ctx, id)
}
