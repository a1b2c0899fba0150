// Package carts provides PostgreSQL-backed storage for per-user cart
// vectors. Rows are sparse: an absent (user_id, slot) row means zero.
package carts

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/dbx"
	"github.com/dmitrijs2005/storefront/internal/server/models"
)

// PostgresRepository implements cart storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Increment adds 1 to the slot's quantity. The upsert is a single statement,
// so concurrent increments for the same (user, slot) compose without lost
// updates.
func (r *PostgresRepository) Increment(ctx context.Context, userID string, slot int) error {
	query :=
		`INSERT INTO cart_items (user_id, slot, qty)
		 VALUES ($1, $2, 1)
		 ON CONFLICT (user_id, slot)
		 DO UPDATE SET qty = cart_items.qty + 1
		 `

	if _, err := r.db.ExecContext(ctx, query, userID, slot); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

// Decrement subtracts 1 from the slot's quantity, floored at zero. The
// floor is applied against the value at the moment the update executes, not
// against a stale read: the qty > 0 guard and the subtraction are one
// statement.
func (r *PostgresRepository) Decrement(ctx context.Context, userID string, slot int) error {
	query :=
		`UPDATE cart_items SET qty = qty - 1
		 WHERE user_id = $1 AND slot = $2 AND qty > 0
		 `

	if _, err := r.db.ExecContext(ctx, query, userID, slot); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

// SelectVector returns the user's full cart as a dense vector: every slot
// in the fixed domain is present, zeros included.
func (r *PostgresRepository) SelectVector(ctx context.Context, userID string) (models.CartVector, error) {
	query := `SELECT slot, qty FROM cart_items WHERE user_id = $1`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	vector := models.NewCartVector()
	for rows.Next() {
		var slot int
		var qty int64
		if err := rows.Scan(&slot, &qty); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if models.ValidSlot(slot) {
			vector[slot] = qty
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return vector, nil
}
