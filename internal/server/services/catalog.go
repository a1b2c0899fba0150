package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/dbx"
	"github.com/dmitrijs2005/storefront/internal/server/models"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/repomanager"
)

// ProductSpec is the validated input for adding a catalog record.
type ProductSpec struct {
	Name     string
	Image    string
	Category string
	NewPrice float64
	OldPrice float64
}

// CatalogService owns the product catalog: sequential id assignment,
// removal and the listing queries the storefront pages use.
type CatalogService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCatalogService(db *sql.DB, m repomanager.RepositoryManager) *CatalogService {
	return &CatalogService{db: db, repomanager: m}
}

// Add reserves the next sequential id and inserts the product in a single
// transaction. The counter bump and the insert commit or roll back
// together, so concurrent adds can neither collide on an id nor leave gaps.
func (s *CatalogService) Add(ctx context.Context, spec ProductSpec) (*models.Product, error) {
	product := &models.Product{
		Name:      spec.Name,
		Image:     spec.Image,
		Category:  spec.Category,
		NewPrice:  spec.NewPrice,
		OldPrice:  spec.OldPrice,
		Available: true,
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Products(tx)

		id, err := repo.NextID(ctx)
		if err != nil {
			return err
		}
		product.ID = id

		_, err = repo.Create(ctx, product)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error adding product: %w", err)
	}

	return product, nil
}

// Remove deletes the product with the given id. Removing an absent id is a
// no-op, not an error.
func (s *CatalogService) Remove(ctx context.Context, id int64) error {
	repo := s.repomanager.Products(s.db)
	if err := repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error removing product: %w", err)
	}
	return nil
}

// List returns all products in insertion order.
func (s *CatalogService) List(ctx context.Context) ([]*models.Product, error) {
	return s.repomanager.Products(s.db).SelectAll(ctx)
}

// Recent returns the last n products by insertion order.
func (s *CatalogService) Recent(ctx context.Context, n int) ([]*models.Product, error) {
	return s.repomanager.Products(s.db).SelectRecent(ctx, n)
}

// ByCategory returns the first limit products in the category, in insertion
// order.
func (s *CatalogService) ByCategory(ctx context.Context, category string, limit int) ([]*models.Product, error) {
	return s.repomanager.Products(s.db).SelectByCategory(ctx, category, limit)
}
