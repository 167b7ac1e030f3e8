package leads

import (
	"context"

	"github.com/scholarshipops/scholarshipops/internal/server/models"
)

type Repository interface {
	List(ctx context.Context, filter *models.LeadFilter) ([]*models.Lead, error)
	GetByID(ctx context.Context, id int64) (*models.Lead, error)
	Create(ctx context.Context, in *models.LeadInput) (*models.Lead, error)
	Update(ctx context.Context, id int64, in *models.LeadInput) (*models.Lead, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int, error)
}
