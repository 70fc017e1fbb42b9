package http

import (
	"github.com/gin-gonic/gin"
)

// StorefrontRoutes handles storefront route registration.
type StorefrontRoutes struct {
	handler *Handler
}

// NewStorefrontRoutes creates a new StorefrontRoutes instance.
func NewStorefrontRoutes(handler *Handler) *StorefrontRoutes {
	return &StorefrontRoutes{
		handler: handler,
	}
}

// RegisterRoutes registers the storefront routes on the given group.
func (r *StorefrontRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/products", r.handler.GetProducts)
	rg.GET("/products/:id", r.handler.GetProduct)

	rg.POST("/selections", r.handler.ActivateSelection)
	rg.PATCH("/selections/:id", r.handler.UpdateSelection)
	rg.DELETE("/selections/:id", r.handler.CancelSelection)
	rg.POST("/selections/:id/confirm", r.handler.ConfirmSelection)

	rg.GET("/cart", r.handler.GetCart)
	rg.GET("/cart/count", r.handler.GetCartCount)
	rg.DELETE("/cart", r.handler.ClearCart)

	rg.GET("/notifications", r.handler.GetNotifications)
}

// GetHandler returns the underlying storefront handler.
func (r *StorefrontRoutes) GetHandler() *Handler {
	return r.handler
}
