package criteria

import (
	"context"

	"github.com/scholarshipops/scholarshipops/internal/server/models"
)

type Repository interface {
	Get(ctx context.Context) (*models.Criteria, error)
	Upsert(ctx context.Context, c *models.Criteria) (*models.Criteria, error)
}
