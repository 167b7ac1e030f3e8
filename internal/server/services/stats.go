package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/scholarshipops/scholarshipops/internal/server/models"
	"github.com/scholarshipops/scholarshipops/internal/server/repositories/repomanager"
	"github.com/scholarshipops/scholarshipops/internal/server/stats"
)

// StatsService recomputes the dashboard summary on every call.
type StatsService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewStatsService(db *sql.DB, m repomanager.RepositoryManager) *StatsService {
	return &StatsService{db: db, repomanager: m, now: time.Now}
}

func (s *StatsService) Get(ctx context.Context) (*models.Stats, error) {
	apps, err := s.repomanager.Applications(s.db).List(ctx)
	if err != nil {
		return nil, err
	}

	total, err := s.repomanager.Leads(s.db).Count(ctx)
	if err != nil {
		return nil, err
	}

	st := stats.Compute(apps, total, s.now())
	return &st, nil
}
