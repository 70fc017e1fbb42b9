// Package model defines the core domain entities for the storefront service.
package model

// WeightTier is one of the fixed weight options offered when a product is
// selected. The tier multiplies the product's base price.
type WeightTier string

const (
	// TierQuarterKilo is a quarter-kilogram portion (25% of base price).
	TierQuarterKilo WeightTier = "1/4 KG"
	// TierHalfKilo is a half-kilogram portion (50% of base price).
	TierHalfKilo WeightTier = "1/2 KG"
	// TierFullKilo is a full-kilogram portion (100% of base price).
	TierFullKilo WeightTier = "1 KG"
)

// DefaultTier is the tier preselected whenever a product is activated.
const DefaultTier = TierHalfKilo

// Tiers lists the supported weight tiers in display order.
var Tiers = []WeightTier{TierQuarterKilo, TierHalfKilo, TierFullKilo}

// Multiplier returns the fraction of the base price charged for this tier.
// An unrecognized tier charges the full base price.
func (t WeightTier) Multiplier() float64 {
	switch t {
	case TierQuarterKilo:
		return 0.25
	case TierHalfKilo:
		return 0.5
	case TierFullKilo:
		return 1.0
	default:
		return 1.0
	}
}

// Valid reports whether the tier is one of the supported labels.
func (t WeightTier) Valid() bool {
	switch t {
	case TierQuarterKilo, TierHalfKilo, TierFullKilo:
		return true
	default:
		return false
	}
}

// WeightOption is a per-product weight/price pair supplied by the catalog
// source. It is used for grid tile display only; selection pricing always
// derives from Product.Price and the fixed tiers.
//
// @Description Per-product weight option with its own price
type WeightOption struct {
	// Weight is the display label, e.g. "1 KG"
	Weight string `json:"weight" example:"1 KG"`
	// Price is the display price for this weight
	Price float64 `json:"price" example:"400"`
}

// Product represents a purchasable catalog entry. Products are supplied by
// the catalog source at startup and are immutable afterwards.
//
// @Description Catalog product
type Product struct {
	// ID is the catalog identity (slug)
	ID string `json:"id" example:"chocolate-cake"`
	// Name is the display and search key (non-unique)
	Name string `json:"name" example:"Chocolate Cake"`
	// Description is the display description
	Description string `json:"description" example:"Rich dark chocolate cake"`
	// Image is a URI or path to the product image
	Image string `json:"image" example:"/images/chocolate-cake.png"`
	// Price is the base unit price, assumed positive
	Price float64 `json:"price" example:"400"`
	// Offer is a pre-discounted display price, never validated against Price
	Offer float64 `json:"offer" example:"300"`
	// Weights is an optional display-only weight/price list
	Weights []WeightOption `json:"weights,omitempty"`
}

// LargestWeight returns the weight option with the highest price, used for
// the grid tile price line. Returns false when the product has no weights.
func (p Product) LargestWeight() (WeightOption, bool) {
	if len(p.Weights) == 0 {
		return WeightOption{}, false
	}
	largest := p.Weights[0]
	for _, w := range p.Weights[1:] {
		if w.Price > largest.Price {
			largest = w
		}
	}
	return largest, true
}
