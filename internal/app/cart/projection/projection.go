// Package projection computes the visible cart state from the authoritative
// lines. Everything here is a pure function recomputed on demand; nothing is
// cached, so the derived values can never drift from the cart.
package projection

import "github.com/fullstep/storefront-cart/internal/app/cart/domain"

// TotalItemCount is the sum of all line quantities; 0 for an empty cart.
func TotalItemCount(lines []domain.Line) int {
	total := 0
	for _, l := range lines {
		total += l.Quantity
	}
	return total
}

// GrandTotal sums price times quantity over all lines. The sum stays exact;
// rounding to two digits happens only when the result is formatted.
func GrandTotal(lines []domain.Line) *domain.Money {
	total := domain.Zero()
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// IsEmpty reports whether there is anything in the cart.
func IsEmpty(lines []domain.Line) bool {
	return len(lines) == 0
}

// LineView is one itemized row, with amounts formatted for display.
type LineView struct {
	ProductID int64  `json:"id"`
	Title     string `json:"title"`
	Image     string `json:"image"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Subtotal  string `json:"subtotal"`
}

// View is the full itemized projection: counter value, rows, grand total
// and whether checkout/clear should be offered. The consuming UI disables
// the actions; the projection only signals.
type View struct {
	Items           []LineView `json:"items"`
	ItemCount       int        `json:"item_count"`
	GrandTotal      string     `json:"grand_total"`
	Empty           bool       `json:"empty"`
	CheckoutEnabled bool       `json:"checkout_enabled"`
}

// Project builds the itemized view for the given lines.
func Project(lines []domain.Line) View {
	items := make([]LineView, 0, len(lines))
	for _, l := range lines {
		items = append(items, LineView{
			ProductID: l.ID,
			Title:     l.Title,
			Image:     l.Image,
			UnitPrice: l.Price.String(),
			Quantity:  l.Quantity,
			Subtotal:  l.Subtotal().String(),
		})
	}
	empty := IsEmpty(lines)
	return View{
		Items:           items,
		ItemCount:       TotalItemCount(lines),
		GrandTotal:      GrandTotal(lines).String(),
		Empty:           empty,
		CheckoutEnabled: !empty,
	}
}
