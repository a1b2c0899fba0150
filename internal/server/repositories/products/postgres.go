// Package products provides the PostgreSQL-backed product catalog store.
package products

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/dbx"
	"github.com/dmitrijs2005/storefront/internal/server/models"
)

// PostgresRepository implements catalog storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// NextID bumps the single counter row and returns the reserved id. The row
// lock taken by UPDATE serializes concurrent callers, so no two inserts can
// observe the same next id.
func (r *PostgresRepository) NextID(ctx context.Context) (int64, error) {
	query :=
		`UPDATE product_id_counter SET last_id = last_id + 1
		 WHERE id = 1
		 RETURNING last_id
		 `

	var nextID int64
	err := r.db.QueryRowContext(ctx, query).Scan(&nextID)

	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return nextID, nil
}

func (r *PostgresRepository) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	query :=
		`INSERT INTO products (id, name, image, category, new_price, old_price, available)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		product.ID, product.Name, product.Image, product.Category,
		product.NewPrice, product.OldPrice, product.Available).Scan(&product.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return product, nil
}

// Delete removes the product with the given id. A missing id is not an
// error: removal is idempotent.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM products WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

// SelectAll returns every product in insertion (id) order.
func (r *PostgresRepository) SelectAll(ctx context.Context) ([]*models.Product, error) {
	query :=
		`SELECT id, name, image, category, new_price, old_price, created_at, available
		 FROM products
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// SelectRecent returns the last n products by insertion order, oldest of
// them first ("new collections" views).
func (r *PostgresRepository) SelectRecent(ctx context.Context, n int) ([]*models.Product, error) {
	query :=
		`SELECT id, name, image, category, new_price, old_price, created_at, available
		 FROM (
		     SELECT id, name, image, category, new_price, old_price, created_at, available
		     FROM products ORDER BY id DESC LIMIT $1
		 ) recent
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, n)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// SelectByCategory returns the first limit products in the category, in
// insertion order.
func (r *PostgresRepository) SelectByCategory(ctx context.Context, category string, limit int) ([]*models.Product, error) {
	query :=
		`SELECT id, name, image, category, new_price, old_price, created_at, available
		 FROM products
		 WHERE category = $1
		 ORDER BY id
		 LIMIT $2
		 `

	rows, err := r.db.QueryContext(ctx, query, category, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

func scanProducts(rows *sql.Rows) ([]*models.Product, error) {
	result := []*models.Product{}

	for rows.Next() {
		p := &models.Product{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Image, &p.Category,
			&p.NewPrice, &p.OldPrice, &p.CreatedAt, &p.Available); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
