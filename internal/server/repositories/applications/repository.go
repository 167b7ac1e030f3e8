package applications

import (
	"context"

	"github.com/scholarshipops/scholarshipops/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]*models.Application, error)
	GetByID(ctx context.Context, id int64) (*models.Application, error)
	Create(ctx context.Context, in *models.ApplicationInput) (*models.Application, error)
	Update(ctx context.Context, id int64, in *models.ApplicationInput) (*models.Application, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
