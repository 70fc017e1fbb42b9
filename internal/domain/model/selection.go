package model

import "time"

// Selection is the transient state of one open product overlay. It exists
// only between activation and close/confirm and is never persisted.
//
// @Description Open selection session
type Selection struct {
	// ID identifies the selection session
	ID string `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Product is the product the overlay was opened on
	Product Product `json:"product"`
	// Quantity is the chosen quantity, clamped to >= 1
	Quantity int `json:"quantity" example:"1"`
	// Tier is the chosen weight tier
	Tier WeightTier `json:"tier" example:"1/2 KG"`
	// CreatedAt is when the selection was activated
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is when the selection was last modified
	UpdatedAt time.Time `json:"updated_at"`
}
