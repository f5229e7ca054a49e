package httpapi

import "encoding/json"

// addItemRequest is the typed product record the add-to-cart gesture
// carries. Price arrives as a JSON number token and is parsed into Money
// without a float round-trip.
type addItemRequest struct {
	ID    int64       `json:"id"`
	Title string      `json:"title"`
	Price json.Number `json:"price"`
	Image string      `json:"image"`
}

// updateQuantityRequest carries the signed delta for a line.
type updateQuantityRequest struct {
	Delta int `json:"delta"`
}

// contactRequest mirrors the contact form fields.
type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// productReply is the catalog record shape returned to the page.
type productReply struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Price string `json:"price"`
	Image string `json:"image"`
}

// checkoutReply reports the accepted order.
type checkoutReply struct {
	OrderID   string `json:"order_id"`
	ItemCount int    `json:"item_count"`
	Total     string `json:"total"`
}
