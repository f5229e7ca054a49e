package domain

import "errors"

// Domain errors for the Cart aggregate
var (
	// ErrEmptyCart indicates a checkout was attempted on an empty cart.
	// It stands for the rejected checkout outcome; the cart is left unchanged.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrInvalidProductID indicates a product with a non-positive catalog id.
	ErrInvalidProductID = errors.New("product id must be positive")

	// ErrEmptyProductTitle indicates a product without a display title.
	ErrEmptyProductTitle = errors.New("product title cannot be empty")

	// ErrNilPrice indicates a product whose price was never set.
	ErrNilPrice = errors.New("product price is required")

	// ErrNegativePrice indicates an attempt to carry a negative price.
	ErrNegativePrice = errors.New("product price cannot be negative")
)
