package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	cartapp "github.com/storefront/backend/internal/application/cart"
	"github.com/storefront/backend/internal/interfaces/http/dto"
)

// CartHandler handles cart API endpoints
type CartHandler struct {
	BaseHandler
	cartService *cartapp.CartService
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartService *cartapp.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// Create handles POST /carts. The body is optional: a bare POST
// creates an anonymous cart.
func (h *CartHandler) Create(c *gin.Context) {
	var req cartapp.CreateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.BadRequest(c, err.Error())
		return
	}

	cart, err := h.cartService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, cart)
}

// GetByID handles GET /carts/:id
func (h *CartHandler) GetByID(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid cart ID format")
		return
	}

	cart, err := h.cartService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, cart)
}

// ListByCustomer handles GET /customers/:id/carts
func (h *CartHandler) ListByCustomer(c *gin.Context) {
	customerID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid customer ID format")
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	carts, err := h.cartService.ListByCustomer(c.Request.Context(), customerID, toDomainFilter(req))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, carts)
}

// Delete handles DELETE /carts/:id
func (h *CartHandler) Delete(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid cart ID format")
		return
	}

	if err := h.cartService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// AddItem handles POST /carts/:id/items. Adding a product that is
// already in the cart merges the quantity into the existing line.
func (h *CartHandler) AddItem(c *gin.Context) {
	cartID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid cart ID format")
		return
	}

	var req cartapp.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	cart, err := h.cartService.AddItem(c.Request.Context(), cartID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, cart.ItemByProduct(req.ProductID))
}

// UpdateItem handles PATCH /carts/:id/items/:itemId. The quantity in
// the request replaces the line's quantity outright.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	cartID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid cart ID format")
		return
	}
	itemID, err := parseUUIDParam(c, "itemId")
	if err != nil {
		h.BadRequest(c, "Invalid item ID format")
		return
	}

	var req cartapp.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	cart, err := h.cartService.UpdateItem(c.Request.Context(), cartID, itemID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, cart.ItemByID(itemID))
}

// RemoveItem handles DELETE /carts/:id/items/:itemId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	cartID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid cart ID format")
		return
	}
	itemID, err := parseUUIDParam(c, "itemId")
	if err != nil {
		h.BadRequest(c, "Invalid item ID format")
		return
	}

	if err := h.cartService.RemoveItem(c.Request.Context(), cartID, itemID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// Clear handles POST /carts/:id/clear. Clearing an already empty cart
// succeeds without touching storage.
func (h *CartHandler) Clear(c *gin.Context) {
	cartID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid cart ID format")
		return
	}

	if err := h.cartService.Clear(c.Request.Context(), cartID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
