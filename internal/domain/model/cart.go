package model

// CartItem is a single cart entry produced by one add-to-cart confirmation.
// The stored price is a snapshot of the line total at the moment of the add;
// later catalog price changes never affect persisted entries. Two additions
// of the same product always produce two separate entries.
//
// @Description Persisted cart line item
// @Example {"name": "Chocolate Cake", "quantity": 2, "weight": "1 KG", "price": 800, "image": "/images/chocolate-cake.png"}
type CartItem struct {
	// Name is the product name at the time of the add
	Name string `json:"name" example:"Chocolate Cake"`
	// Quantity is the confirmed quantity, always >= 1
	Quantity int `json:"quantity" example:"2"`
	// Weight is the tier label chosen in the selection
	Weight WeightTier `json:"weight" example:"1 KG"`
	// Price is the computed line total snapshot
	Price float64 `json:"price" example:"800"`
	// Image is the product image at the time of the add
	Image string `json:"image" example:"/images/chocolate-cake.png"`
}
