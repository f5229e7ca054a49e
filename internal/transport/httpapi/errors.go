package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fullstep/storefront-cart/internal/app/cart/domain"
)

// mapDomainError translates domain sentinel errors into HTTP replies.
// Unknown errors become 500.
func mapDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrEmptyCart):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidProductID),
		errors.Is(err, domain.ErrEmptyProductTitle),
		errors.Is(err, domain.ErrNilPrice),
		errors.Is(err, domain.ErrNegativePrice):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
