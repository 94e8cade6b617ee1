// ABOUTME: HTTP client for the read-only remote catalog service
// ABOUTME: List operations degrade to empty results on failure; single fetches return errors

package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// ErrNotFound is returned when a requested product does not exist.
var ErrNotFound = errors.New("not found")

// wireProduct is the shape the catalog service returns. The service uses
// numeric ids; everything downstream uses strings.
type wireProduct struct {
	ID          json.Number `json:"id"`
	Title       string      `json:"title"`
	Price       float64     `json:"price"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	Rating      Rating      `json:"rating"`
}

func (w wireProduct) toProduct() Product {
	return Product{
		ID:          w.ID.String(),
		Title:       w.Title,
		Price:       w.Price,
		Category:    w.Category,
		Description: w.Description,
		Image:       w.Image,
		Rating:      w.Rating,
		Origin:      OriginRemote,
	}
}

// Client fetches the baseline product collection from the catalog service.
// All fetched entities are tagged OriginRemote. A non-nil cache short-circuits
// repeat lookups of individual products.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *Cache
	logger     *slog.Logger
}

// NewClient creates a catalog client for the service at baseURL.
// A zero timeout defaults to 10 seconds.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     slog.Default().With("component", "catalog"),
	}
}

// SetCache configures a TTL cache for product lookups. When set, FetchByID
// consults the cache first and FetchAll populates it.
func (c *Client) SetCache(cache *Cache) {
	c.cache = cache
}

// FetchAll retrieves the full baseline collection. On network or decode
// failure it logs and returns an empty slice so callers can fall back to
// locally resident data.
func (c *Client) FetchAll(ctx context.Context) []Product {
	var wire []wireProduct
	if err := c.getJSON(ctx, "/products", &wire); err != nil {
		c.logger.Warn("product fetch failed, falling back to resident data", "error", err)
		return []Product{}
	}

	products := make([]Product, len(wire))
	for i, w := range wire {
		products[i] = w.toProduct()
		if c.cache != nil {
			c.cache.Put(products[i])
		}
	}
	return products
}

// FetchCategories retrieves the category facet names. Failure yields an
// empty slice.
func (c *Client) FetchCategories(ctx context.Context) []string {
	var categories []string
	if err := c.getJSON(ctx, "/products/categories", &categories); err != nil {
		c.logger.Warn("category fetch failed", "error", err)
		return []string{}
	}
	return categories
}

// FetchByID retrieves a single product.
func (c *Client) FetchByID(ctx context.Context, id string) (Product, error) {
	if c.cache != nil {
		if p, ok := c.cache.Get(id); ok {
			return p, nil
		}
	}

	var wire wireProduct
	if err := c.getJSON(ctx, "/products/"+url.PathEscape(id), &wire); err != nil {
		return Product{}, fmt.Errorf("fetching product %s: %w", id, err)
	}

	p := wire.toProduct()
	if c.cache != nil {
		c.cache.Put(p)
	}
	return p, nil
}

// FetchByCategory retrieves the products in one category. Failure yields an
// empty slice.
func (c *Client) FetchByCategory(ctx context.Context, name string) []Product {
	var wire []wireProduct
	if err := c.getJSON(ctx, "/products/category/"+url.PathEscape(name), &wire); err != nil {
		c.logger.Warn("category product fetch failed", "category", name, "error", err)
		return []Product{}
	}

	products := make([]Product, len(wire))
	for i, w := range wire {
		products[i] = w.toProduct()
	}
	return products
}

// getJSON performs a GET against the service and decodes the response body.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("requesting %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("unexpected status %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}
