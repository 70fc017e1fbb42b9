// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

// ActivateSelectionRequest represents the JSON request body for opening a
// product selection.
//
// The ProductID field is required and must name a catalog product.
// Validation is performed using gin's binding tags.
//
// @Description Request to open a selection for a catalog product
// @Example {"product_id": "chocolate-cake"}
type ActivateSelectionRequest struct {
	// ProductID is the catalog identifier of the product to select.
	ProductID string `json:"product_id" binding:"required" example:"chocolate-cake"`
} // @name ActivateSelectionRequest

// UpdateSelectionRequest represents the JSON request body for adjusting an
// open selection. Both fields are optional; absent fields leave the current
// value unchanged.
//
// @Description Request to adjust quantity or weight of an open selection
// @Example {"quantity_delta": 1}
// @Example {"weight": "1 KG"}
type UpdateSelectionRequest struct {
	// QuantityDelta is added to the current quantity. The resulting quantity
	// never drops below 1.
	QuantityDelta *int `json:"quantity_delta,omitempty" example:"-1"`
	// Weight selects a weight option for the product.
	Weight *string `json:"weight,omitempty" example:"1/2 KG"`
} // @name UpdateSelectionRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrInvalidProductID is returned when product_id is missing or blank.
	ErrInvalidProductID = &ValidationError{
		Field:   "product_id",
		Message: "must not be empty",
	}
	// ErrInvalidWeight is returned when weight is not a recognized option.
	ErrInvalidWeight = &ValidationError{
		Field:   "weight",
		Message: "unrecognized weight option",
	}
)

// Validate performs custom validation on the request.
// Returns an error if validation fails, nil otherwise.
func (r *ActivateSelectionRequest) Validate() error {
	if r.ProductID == "" {
		return ErrInvalidProductID
	}
	return nil
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
