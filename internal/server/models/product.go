package models

import "time"

// Product is a catalog record. IDs are sequential integers assigned at
// creation and never reused, even after removal.
type Product struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	Category  string    `json:"category"`
	NewPrice  float64   `json:"new_price"`
	OldPrice  float64   `json:"old_price"`
	CreatedAt time.Time `json:"date"`
	Available bool      `json:"available"`
}
