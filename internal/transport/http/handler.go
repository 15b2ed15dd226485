// Package http exposes the storefront over a JSON API. Sessions are
// identified by the X-Session-ID header; a fresh id is minted and echoed
// back when the caller has none yet.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/light-bringer/storefront-service/internal/app/cart/queries/checkout_summary"
	"github.com/light-bringer/storefront-service/internal/app/cart/queries/view_cart"
	"github.com/light-bringer/storefront-service/internal/app/cart/usecases/add_to_cart"
	"github.com/light-bringer/storefront-service/internal/app/cart/usecases/remove_item"
	"github.com/light-bringer/storefront-service/internal/app/cart/usecases/toggle_drawer"
	"github.com/light-bringer/storefront-service/internal/app/cart/usecases/toggle_selection"
	"github.com/light-bringer/storefront-service/internal/app/cart/usecases/update_quantity"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/list_products"
	"github.com/light-bringer/storefront-service/internal/app/catalog/usecases/select_variant"
	"github.com/light-bringer/storefront-service/internal/app/order/usecases/place_order"
	"github.com/light-bringer/storefront-service/internal/pkg/money"
)

// Handler bundles the use cases and queries behind the API routes.
type Handler struct {
	logger *zap.Logger

	listProducts  *list_products.Query
	getProduct    *get_product.Query
	selectVariant *select_variant.Interactor

	viewCart        *view_cart.Query
	addToCart       *add_to_cart.Interactor
	removeItem      *remove_item.Interactor
	updateQuantity  *update_quantity.Interactor
	toggleSelection *toggle_selection.Interactor
	toggleDrawer    *toggle_drawer.Interactor

	checkoutSummary *checkout_summary.Query
	placeOrder      *place_order.Interactor
}

// NewHandler creates a Handler over the given application services.
func NewHandler(
	logger *zap.Logger,
	listProducts *list_products.Query,
	getProduct *get_product.Query,
	selectVariant *select_variant.Interactor,
	viewCart *view_cart.Query,
	addToCart *add_to_cart.Interactor,
	removeItem *remove_item.Interactor,
	updateQuantity *update_quantity.Interactor,
	toggleSelection *toggle_selection.Interactor,
	toggleDrawer *toggle_drawer.Interactor,
	checkoutSummary *checkout_summary.Query,
	placeOrder *place_order.Interactor,
) *Handler {
	return &Handler{
		logger:          logger,
		listProducts:    listProducts,
		getProduct:      getProduct,
		selectVariant:   selectVariant,
		viewCart:        viewCart,
		addToCart:       addToCart,
		removeItem:      removeItem,
		updateQuantity:  updateQuantity,
		toggleSelection: toggleSelection,
		toggleDrawer:    toggleDrawer,
		checkoutSummary: checkoutSummary,
		placeOrder:      placeOrder,
	}
}

// ListProducts handles GET /api/v1/products.
func (h *Handler) ListProducts(c *gin.Context) {
	req := &list_products.Request{Style: c.Query("style")}

	if raw := c.Query("min_price"); raw != "" {
		amount, err := money.FromDecimalString(raw)
		if err != nil {
			respondBadRequest(c, "min_price must be a decimal amount")
			return
		}
		req.MinPrice = amount
	}
	if raw := c.Query("max_price"); raw != "" {
		amount, err := money.FromDecimalString(raw)
		if err != nil {
			respondBadRequest(c, "max_price must be a decimal amount")
			return
		}
		req.MaxPrice = amount
	}

	products, err := h.listProducts.Execute(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": products})
}

// GetProduct handles GET /api/v1/products/:id.
func (h *Handler) GetProduct(c *gin.Context) {
	detail, err := h.getProduct.Execute(c.Request.Context(), &get_product.Request{
		ProductID: c.Param("id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// SelectVariant handles POST /api/v1/products/:id/selection.
func (h *Handler) SelectVariant(c *gin.Context) {
	var body struct {
		VariantID string `json:"variant_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, "variant_id is required")
		return
	}

	result, err := h.selectVariant.Execute(c.Request.Context(), &select_variant.Request{
		SessionID: sessionID(c),
		ProductID: c.Param("id"),
		VariantID: body.VariantID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ViewCart handles GET /api/v1/cart.
func (h *Handler) ViewCart(c *gin.Context) {
	view, err := h.viewCart.Execute(c.Request.Context(), &view_cart.Request{
		SessionID: sessionID(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// AddToCart handles POST /api/v1/cart/items.
func (h *Handler) AddToCart(c *gin.Context) {
	var body struct {
		ProductID string `json:"product_id" binding:"required"`
		VariantID string `json:"variant_id" binding:"required"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, "product_id and variant_id are required")
		return
	}

	err := h.addToCart.Execute(c.Request.Context(), &add_to_cart.Request{
		SessionID: sessionID(c),
		ProductID: body.ProductID,
		VariantID: body.VariantID,
		Quantity:  body.Quantity,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondCart(c, http.StatusCreated)
}

// RemoveItem handles DELETE /api/v1/cart/items/:variantId.
func (h *Handler) RemoveItem(c *gin.Context) {
	err := h.removeItem.Execute(c.Request.Context(), &remove_item.Request{
		SessionID: sessionID(c),
		VariantID: c.Param("variantId"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondCart(c, http.StatusOK)
}

// UpdateQuantity handles PATCH /api/v1/cart/items/:variantId.
func (h *Handler) UpdateQuantity(c *gin.Context) {
	var body struct {
		Delta int `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, "delta must be a non-zero integer")
		return
	}

	err := h.updateQuantity.Execute(c.Request.Context(), &update_quantity.Request{
		SessionID: sessionID(c),
		VariantID: c.Param("variantId"),
		Delta:     body.Delta,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondCart(c, http.StatusOK)
}

// ToggleSelection handles POST /api/v1/cart/items/:variantId/selection.
func (h *Handler) ToggleSelection(c *gin.Context) {
	err := h.toggleSelection.Execute(c.Request.Context(), &toggle_selection.Request{
		SessionID: sessionID(c),
		VariantID: c.Param("variantId"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondCart(c, http.StatusOK)
}

// SetAllSelection handles PUT /api/v1/cart/selection.
func (h *Handler) SetAllSelection(c *gin.Context) {
	var body struct {
		Selected *bool `json:"selected" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, "selected is required")
		return
	}

	err := h.toggleSelection.ExecuteAll(c.Request.Context(), &toggle_selection.AllRequest{
		SessionID: sessionID(c),
		Selected:  *body.Selected,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondCart(c, http.StatusOK)
}

// ToggleDrawer handles POST /api/v1/cart/drawer.
func (h *Handler) ToggleDrawer(c *gin.Context) {
	open, err := h.toggleDrawer.Execute(c.Request.Context(), &toggle_drawer.Request{
		SessionID: sessionID(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"drawer_open": open})
}

// CheckoutSummary handles GET /api/v1/checkout.
func (h *Handler) CheckoutSummary(c *gin.Context) {
	summary, err := h.checkoutSummary.Execute(c.Request.Context(), &checkout_summary.Request{
		SessionID: sessionID(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// PlaceOrder handles POST /api/v1/checkout/orders.
func (h *Handler) PlaceOrder(c *gin.Context) {
	result, err := h.placeOrder.Execute(c.Request.Context(), &place_order.Request{
		SessionID: sessionID(c),
	})
	if err != nil {
		recordOrderPlaced(false)
		respondError(c, err)
		return
	}
	recordOrderPlaced(true)
	c.JSON(http.StatusCreated, result)
}

// respondCart renders the current cart state after a mutation, so clients
// never need a follow-up fetch.
func (h *Handler) respondCart(c *gin.Context, status int) {
	view, err := h.viewCart.Execute(c.Request.Context(), &view_cart.Request{
		SessionID: sessionID(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, view)
}
