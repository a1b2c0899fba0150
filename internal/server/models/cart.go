package models

// CartSlotCount is the fixed size of every user's cart vector. The slot
// range is historical frontend contract: slots are indexed 0..299 and are
// not guaranteed to correspond to existing product IDs.
const CartSlotCount = 300

// CartVector maps a slot index to a non-negative quantity. The wire
// representation is always dense: every slot in [0, CartSlotCount) is
// present, zeros included.
type CartVector map[int]int64

// NewCartVector returns a dense all-zero vector.
func NewCartVector() CartVector {
	v := make(CartVector, CartSlotCount)
	for i := 0; i < CartSlotCount; i++ {
		v[i] = 0
	}
	return v
}

// ValidSlot reports whether slot lies inside the fixed cart domain.
func ValidSlot(slot int) bool {
	return slot >= 0 && slot < CartSlotCount
}
