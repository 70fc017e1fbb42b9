package service

import "github.com/guttosm/storefront-service/internal/domain/model"

// TierPrice returns the price of one unit of the given weight tier.
// An unrecognized tier charges the full base price.
func TierPrice(basePrice float64, tier model.WeightTier) float64 {
	return basePrice * tier.Multiplier()
}

// LineTotal returns the total for quantity units of the given tier.
// The result is a raw numeric value; currency formatting belongs to the
// display layer. Quantity is caller-guaranteed >= 1.
func LineTotal(basePrice float64, tier model.WeightTier, quantity int) float64 {
	return TierPrice(basePrice, tier) * float64(quantity)
}

// BuildLineItem snapshots a selection into a persistable cart line item.
// The stored price is the line total at this moment; later catalog changes
// never affect the snapshot.
func BuildLineItem(product model.Product, tier model.WeightTier, quantity int) model.CartItem {
	return model.CartItem{
		Name:     product.Name,
		Quantity: quantity,
		Weight:   tier,
		Price:    LineTotal(product.Price, tier, quantity),
		Image:    product.Image,
	}
}
