// Package catalog fetches the storefront's product list from a remote
// catalog and maps the records into the typed products the cart engine
// expects. It is display glue: no retries, no validation beyond type shape.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/fullstep/storefront-cart/internal/app/cart/domain"
)

// DefaultDisplayNames are the storefront's friendly names, applied by
// position over whatever titles the remote catalog returns.
var DefaultDisplayNames = []string{
	"Mochila", "Remera", "Saco", "Remera Termica", "Pulsera", "Anillo",
}

// remoteProduct is the remote catalog's record shape.
// Price is decoded as a number token so it reaches Money without a float
// round-trip.
type remoteProduct struct {
	ID    int64       `json:"id"`
	Title string      `json:"title"`
	Price json.Number `json:"price"`
	Image string      `json:"image"`
}

// Fetcher retrieves a limited product list over HTTP.
type Fetcher struct {
	client       *http.Client
	baseURL      string
	limit        int
	displayNames []string
}

// NewFetcher builds a fetcher for the given catalog base URL. limit bounds
// the number of products requested; timeout bounds the whole request.
func NewFetcher(baseURL string, limit int, timeout time.Duration) *Fetcher {
	return &Fetcher{
		client:       &http.Client{Timeout: timeout},
		baseURL:      baseURL,
		limit:        limit,
		displayNames: DefaultDisplayNames,
	}
}

// Fetch retrieves the product list and maps it into domain products,
// applying the display-name overrides by position.
func (f *Fetcher) Fetch(ctx context.Context) ([]domain.Product, error) {
	url := fmt.Sprintf("%s/products?limit=%d", f.baseURL, f.limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog fetch: unexpected status %d", resp.StatusCode)
	}

	var raw []remoteProduct
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("catalog fetch: decode: %w", err)
	}

	products := make([]domain.Product, 0, len(raw))
	for i, r := range raw {
		price, err := domain.NewMoneyFromDecimal(r.Price.String())
		if err != nil {
			return nil, fmt.Errorf("catalog fetch: product %d: %w", r.ID, err)
		}
		title := r.Title
		if i < len(f.displayNames) {
			title = f.displayNames[i]
		}
		products = append(products, domain.Product{
			ID:    r.ID,
			Title: title,
			Price: price,
			Image: r.Image,
		})
	}
	return products, nil
}
