// Package httpapi is the thin transport in front of the cart engine: it
// wires page gestures to engine operations, re-projects the view after each
// state change, and owns the confirmation step for destructive actions.
package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fullstep/storefront-cart/internal/app/cart/domain"
	"github.com/fullstep/storefront-cart/internal/app/cart/engine"
	"github.com/fullstep/storefront-cart/internal/app/cart/notify"
	"github.com/fullstep/storefront-cart/internal/app/cart/projection"
	"github.com/fullstep/storefront-cart/internal/app/catalog"
	"github.com/fullstep/storefront-cart/internal/app/contact"
	"github.com/fullstep/storefront-cart/internal/pkg/logger"
)

// Handler groups the engine and its collaborators behind the HTTP surface.
type Handler struct {
	engine  *engine.Engine
	fetcher *catalog.Fetcher
	contact *contact.Submitter
	toasts  *notify.Emitter
	log     *logger.Logger
}

func NewHandler(eng *engine.Engine, fetcher *catalog.Fetcher, submitter *contact.Submitter, toasts *notify.Emitter, log *logger.Logger) *Handler {
	return &Handler{
		engine:  eng,
		fetcher: fetcher,
		contact: submitter,
		toasts:  toasts,
		log:     log,
	}
}

// Register mounts all routes under /api.
func (h *Handler) Register(r *gin.Engine) {
	api := r.Group("/api")
	api.GET("/products", h.listProducts)
	api.GET("/cart", h.getCart)
	api.POST("/cart/items", h.addItem)
	api.POST("/cart/items/:id/quantity", h.updateQuantity)
	api.DELETE("/cart/items/:id", h.removeItem)
	api.DELETE("/cart", h.clearCart)
	api.POST("/cart/checkout", h.checkout)
	api.POST("/contact", h.submitContact)
	api.GET("/notifications", h.listNotifications)
}

func (h *Handler) listProducts(c *gin.Context) {
	products, err := h.fetcher.Fetch(c.Request.Context())
	if err != nil {
		h.log.Warn("catalog fetch failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Sorry, we could not load the products right now. Please try again later.",
		})
		return
	}
	out := make([]productReply, 0, len(products))
	for _, p := range products {
		out = append(out, productReply{
			ID:    p.ID,
			Title: p.Title,
			Price: p.Price.String(),
			Image: p.Image,
		})
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, projection.Project(h.engine.Snapshot()))
}

func (h *Handler) addItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product payload"})
		return
	}
	price, err := domain.NewMoneyFromDecimal(req.Price.String())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product price"})
		return
	}

	p := domain.Product{ID: req.ID, Title: req.Title, Price: price, Image: req.Image}
	if err := h.engine.AddToCart(c.Request.Context(), p); err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, projection.Project(h.engine.Snapshot()))
}

func (h *Handler) updateQuantity(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quantity payload"})
		return
	}

	h.engine.UpdateQuantity(c.Request.Context(), id, req.Delta)
	c.JSON(http.StatusOK, projection.Project(h.engine.Snapshot()))
}

func (h *Handler) removeItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	// Removal is destructive: without explicit confirmation the engine is
	// never invoked.
	if !confirmed(c) {
		c.JSON(http.StatusPreconditionRequired, gin.H{"error": "confirmation required"})
		return
	}

	h.engine.RemoveItem(c.Request.Context(), id)
	c.JSON(http.StatusOK, projection.Project(h.engine.Snapshot()))
}

func (h *Handler) clearCart(c *gin.Context) {
	if !confirmed(c) {
		c.JSON(http.StatusPreconditionRequired, gin.H{"error": "confirmation required"})
		return
	}

	h.engine.ClearCart(c.Request.Context())
	c.JSON(http.StatusOK, projection.Project(h.engine.Snapshot()))
}

func (h *Handler) checkout(c *gin.Context) {
	ord, err := h.engine.Checkout(c.Request.Context())
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, checkoutReply{
		OrderID:   ord.OrderID,
		ItemCount: ord.ItemCount,
		Total:     ord.Total.String(),
	})
}

func (h *Handler) submitContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contact payload"})
		return
	}

	form := contact.Form{Name: req.Name, Email: req.Email, Message: req.Message}
	if errs := form.Validate(); len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"errors":  errs,
			"message": "Please correct the errors in the form.",
		})
		return
	}

	if err := h.contact.Submit(c.Request.Context(), form); err != nil {
		h.log.Warn("contact submit failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{
			"message": "Oops! There was a problem sending your message.",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message sent successfully!"})
}

func (h *Handler) listNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, h.toasts.Active())
}

// pathID parses the :id segment; replies 400 and returns false when it is
// not an integer.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return 0, false
	}
	return id, true
}

// confirmed reports whether the caller carried the explicit confirmation
// flag for a destructive operation.
func confirmed(c *gin.Context) bool {
	return c.Query("confirm") == "true"
}
