package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/storefront-service/internal/domain/dto"
	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/guttosm/storefront-service/internal/i18n"
	"github.com/guttosm/storefront-service/internal/middleware"
	"github.com/guttosm/storefront-service/internal/notify"
	"github.com/guttosm/storefront-service/internal/service"
)

// Handler provides HTTP handlers for storefront routes.
type Handler struct {
	catalog    service.Catalog
	selections service.Selections
	cart       service.Cart
	badge      *service.CartBadge
	toasts     *notify.ToastCenter
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithCartBadge wires the cart badge counter into the handler.
func WithCartBadge(badge *service.CartBadge) HandlerOption {
	return func(h *Handler) {
		h.badge = badge
	}
}

// WithToastCenter wires the toast center into the handler.
func WithToastCenter(toasts *notify.ToastCenter) HandlerOption {
	return func(h *Handler) {
		h.toasts = toasts
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(catalog service.Catalog, selections service.Selections, cart service.Cart, opts ...HandlerOption) *Handler {
	h := &Handler{
		catalog:    catalog,
		selections: selections,
		cart:       cart,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// auditAction logs a storefront action if a logging service is attached to the context.
func auditAction(c *gin.Context, actionType, message string, fields map[string]interface{}) {
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, actionType, message, fields)
		}
	}
}

// GetProducts handles GET /api/products requests.
//
// @Summary      List catalog products
// @Description  Returns the product catalog in stable order. The optional search parameter filters products whose name contains the query, matched case-insensitively. An empty query returns the whole catalog.
// @Tags         Products
// @Produce      json
// @Param        search query string false "Case-insensitive name filter"
// @Success      200 {object} dto.SuccessResponse "Matching products"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/products [get]
func (h *Handler) GetProducts(c *gin.Context) {
	builder := NewResponseBuilder(c)

	query := c.Query("search")
	products := h.catalog.Search(query)

	builder.SuccessOK(gin.H{
		"products": products,
		"count":    len(products),
	})
}

// GetProduct handles GET /api/products/:id requests.
//
// @Summary      Get a single product
// @Description  Returns one catalog product by its identifier.
// @Tags         Products
// @Produce      json
// @Param        id path string true "Product identifier"
// @Success      200 {object} dto.SuccessResponse "The product"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown product"
// @Router       /api/products/{id} [get]
func (h *Handler) GetProduct(c *gin.Context) {
	builder := NewResponseBuilder(c)

	product, ok := h.catalog.GetByID(c.Param("id"))
	if !ok {
		builder.Error(http.StatusNotFound, i18n.ErrKeyProductNotFound, nil)
		return
	}

	builder.SuccessOK(product)
}

// ActivateSelection handles POST /api/selections requests.
//
// @Summary      Open a product selection
// @Description  Opens a selection for the given product with quantity 1 and the default weight option. The returned selection id addresses subsequent adjust, confirm, and cancel calls.
// @Tags         Selections
// @Accept       json
// @Produce      json
// @Param        request body dto.ActivateSelectionRequest true "Product to select"
// @Success      201 {object} dto.SuccessResponse "The opened selection"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown product"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/selections [post]
func (h *Handler) ActivateSelection(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.ActivateSelectionRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	selection, err := h.selections.Activate("", req.ProductID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyProductNotFound, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessCreated(selection)
}

// UpdateSelection handles PATCH /api/selections/:id requests.
//
// @Summary      Adjust an open selection
// @Description  Applies a quantity delta and/or selects a weight option on an open selection. The quantity never drops below 1. Unknown weight options are rejected.
// @Tags         Selections
// @Accept       json
// @Produce      json
// @Param        id path string true "Selection identifier"
// @Param        request body dto.UpdateSelectionRequest true "Adjustments to apply"
// @Success      200 {object} dto.SuccessResponse "The updated selection"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Not found - no open selection"
// @Router       /api/selections/{id} [patch]
func (h *Handler) UpdateSelection(c *gin.Context) {
	builder := NewResponseBuilder(c)
	selectionID := c.Param("id")

	req, err := BuildRequest[dto.UpdateSelectionRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	var selection model.Selection

	if req.Weight != nil {
		tier := model.WeightTier(*req.Weight)
		if !tier.Valid() {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationWeight, dto.ErrInvalidWeight)
			return
		}
		selection, err = h.selections.SetTier(selectionID, tier)
		if err != nil {
			builder.Error(http.StatusNotFound, i18n.ErrKeySelectionNotFound, err)
			return
		}
	}

	if req.QuantityDelta != nil {
		selection, err = h.selections.ChangeQuantity(selectionID, *req.QuantityDelta)
		if err != nil {
			builder.Error(http.StatusNotFound, i18n.ErrKeySelectionNotFound, err)
			return
		}
	}

	if req.Weight == nil && req.QuantityDelta == nil {
		selection, err = h.selections.Get(selectionID)
		if err != nil {
			builder.Error(http.StatusNotFound, i18n.ErrKeySelectionNotFound, err)
			return
		}
	}

	builder.SuccessOK(selection)
}

// CancelSelection handles DELETE /api/selections/:id requests.
//
// @Summary      Close a selection
// @Description  Discards an open selection without adding anything to the cart. Closing an unknown selection is a no-op.
// @Tags         Selections
// @Produce      json
// @Param        id path string true "Selection identifier"
// @Success      204 "Selection closed"
// @Router       /api/selections/{id} [delete]
func (h *Handler) CancelSelection(c *gin.Context) {
	h.selections.Close(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// ConfirmSelection handles POST /api/selections/:id/confirm requests.
//
// @Summary      Confirm a selection into the cart
// @Description  Prices the selection at its weight option (quantity times the option price, full price for unrecognized options), appends the line item to the cart, closes the selection, and raises an "Item added successfully!" notification.
// @Tags         Selections
// @Accept       json
// @Produce      json
// @Param        id path string true "Selection identifier"
// @Success      200 {object} dto.SuccessResponse "The appended cart line"
// @Failure      404 {object} dto.ErrorResponse "Not found - no open selection"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/selections/{id}/confirm [post]
func (h *Handler) ConfirmSelection(c *gin.Context) {
	builder := NewResponseBuilder(c)
	selectionID := c.Param("id")

	start := time.Now()
	item, err := h.selections.Confirm(c.Request.Context(), selectionID)
	if err != nil {
		if errors.Is(err, service.ErrNoActiveSelection) {
			builder.Error(http.StatusNotFound, i18n.ErrKeySelectionNotFound, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	auditAction(c, "add_to_cart", "Item added to cart", map[string]interface{}{
		"product":     item.Name,
		"quantity":    item.Quantity,
		"weight":      string(item.Weight),
		"price":       item.Price,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	builder.SuccessOK(item)
}

// GetCart handles GET /api/cart requests.
//
// @Summary      Read the cart
// @Description  Returns the accumulated cart lines in insertion order. Corrupt persisted state is discarded and reported as an empty cart.
// @Tags         Cart
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Cart lines"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cart [get]
func (h *Handler) GetCart(c *gin.Context) {
	builder := NewResponseBuilder(c)

	items, err := h.cart.Items(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(gin.H{
		"items": items,
		"count": len(items),
	})
}

// GetCartCount handles GET /api/cart/count requests.
//
// @Summary      Read the cart badge count
// @Description  Returns the number of cart lines. Served from the badge counter when available, which tracks cart-changed signals, otherwise read through from storage.
// @Tags         Cart
// @Produce     json
// @Success      200 {object} dto.SuccessResponse "Line count"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cart/count [get]
func (h *Handler) GetCartCount(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if h.badge != nil {
		builder.SuccessOK(gin.H{"count": h.badge.Count()})
		return
	}

	count, err := h.cart.Count(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(gin.H{"count": count})
}

// ClearCart handles DELETE /api/cart requests.
//
// @Summary      Empty the cart
// @Description  Removes every line from the cart and signals cart-changed observers.
// @Tags         Cart
// @Produce      json
// @Success      204 "Cart emptied"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cart [delete]
func (h *Handler) ClearCart(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if err := h.cart.Clear(c.Request.Context()); err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	auditAction(c, "reset_cart", "Cart emptied", nil)
	c.Status(http.StatusNoContent)
}

// GetNotifications handles GET /api/notifications requests.
//
// @Summary      List active notifications
// @Description  Returns the toast notifications that have not yet expired. Each confirmed add-to-cart raises a distinct notification that lives for one second.
// @Tags         Notifications
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Active notifications"
// @Router       /api/notifications [get]
func (h *Handler) GetNotifications(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var toasts []notify.Toast
	if h.toasts != nil {
		toasts = h.toasts.Active()
	}
	if toasts == nil {
		toasts = []notify.Toast{}
	}

	builder.SuccessOK(gin.H{
		"notifications": toasts,
		"count":         len(toasts),
	})
}
