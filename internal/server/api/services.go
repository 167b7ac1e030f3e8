package api

import (
	"context"

	"github.com/scholarshipops/scholarshipops/internal/server/models"
	"github.com/scholarshipops/scholarshipops/internal/server/services"
)

type LeadService interface {
	List(ctx context.Context, filter *models.LeadFilter) ([]*models.Lead, error)
	Get(ctx context.Context, id int64) (*models.Lead, error)
	Create(ctx context.Context, in *models.LeadInput) (*models.Lead, error)
	Update(ctx context.Context, id int64, in *models.LeadInput) (*models.Lead, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type ApplicationService interface {
	List(ctx context.Context) ([]*models.Application, error)
	Get(ctx context.Context, id int64) (*models.Application, error)
	Create(ctx context.Context, in *models.ApplicationInput) (*models.Application, error)
	Update(ctx context.Context, id int64, in *models.ApplicationInput) (*models.Application, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type CriteriaService interface {
	// Get returns nil, nil when nothing has been saved.
	Get(ctx context.Context) (*models.Criteria, error)
	Save(ctx context.Context, in *models.CriteriaInput) (*models.Criteria, error)
}

type StatsService interface {
	Get(ctx context.Context) (*models.Stats, error)
}

type TriggerService interface {
	Search(ctx context.Context) *services.TriggerResult
	Schedule(ctx context.Context) *services.TriggerResult
	Track(ctx context.Context) *services.TriggerResult
}
