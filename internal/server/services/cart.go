package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/server/models"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/repomanager"
)

// CartService mutates and reads per-user cart vectors. All mutations go
// through single-statement repository operations, so concurrent requests
// for the same (user, slot) compose instead of losing updates.
type CartService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCartService(db *sql.DB, m repomanager.RepositoryManager) *CartService {
	return &CartService{db: db, repomanager: m}
}

// AddItem adds 1 to the slot. Slots outside the fixed 0..299 domain fail
// with common.ErrInvalidSlot; the historical behavior silently corrupted
// the stored object instead.
func (s *CartService) AddItem(ctx context.Context, userID string, slot int) error {
	if !models.ValidSlot(slot) {
		return common.ErrInvalidSlot
	}
	return s.repomanager.Carts(s.db).Increment(ctx, userID, slot)
}

// RemoveItem subtracts 1 from the slot, floored at zero.
func (s *CartService) RemoveItem(ctx context.Context, userID string, slot int) error {
	if !models.ValidSlot(slot) {
		return common.ErrInvalidSlot
	}
	return s.repomanager.Carts(s.db).Decrement(ctx, userID, slot)
}

// Get returns the user's dense cart vector.
func (s *CartService) Get(ctx context.Context, userID string) (models.CartVector, error) {
	return s.repomanager.Carts(s.db).SelectVector(ctx, userID)
}
