package products

import (
	"context"

	"github.com/dmitrijs2005/storefront/internal/server/models"
)

type Repository interface {
	// NextID atomically advances the catalog id counter and returns the
	// newly reserved id. Call it on the same transaction as Create so a
	// failed insert rolls the counter back.
	NextID(ctx context.Context) (int64, error)
	Create(ctx context.Context, product *models.Product) (*models.Product, error)
	Delete(ctx context.Context, id int64) error
	SelectAll(ctx context.Context) ([]*models.Product, error)
	SelectRecent(ctx context.Context, n int) ([]*models.Product, error)
	SelectByCategory(ctx context.Context, category string, limit int) ([]*models.Product, error)
}
