package carts

import (
	"context"

	"github.com/dmitrijs2005/storefront/internal/server/models"
)

type Repository interface {
	Increment(ctx context.Context, userID string, slot int) error
	Decrement(ctx context.Context, userID string, slot int) error
	SelectVector(ctx context.Context, userID string) (models.CartVector, error)
}
