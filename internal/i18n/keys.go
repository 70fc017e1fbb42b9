// Package i18n provides internationalization support for the storefront service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyProductNotFound indicates an unknown catalog product.
	ErrKeyProductNotFound = "error.product_not_found"
	// ErrKeySelectionNotFound indicates an unknown or expired selection.
	ErrKeySelectionNotFound = "error.selection_not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyValidationQuantity indicates an invalid quantity value.
	ErrKeyValidationQuantity = "error.validation.quantity"
	// ErrKeyValidationWeight indicates an unrecognized weight tier.
	ErrKeyValidationWeight = "error.validation.weight"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
)

// Success message translation keys.
const (
	// SuccessKeyItemAdded indicates an item was added to the cart.
	SuccessKeyItemAdded = "success.item_added"
	// SuccessKeyCartCleared indicates the cart was emptied.
	SuccessKeyCartCleared = "success.cart_cleared"
)
