// Package catalog is the HTTP client for the external catalog service. The
// engine never owns products, it only decides what to ask for.
package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/schema"

	"github.com/Mr-Fulani/PharmaTurk-sub001/pkg/types"
)

var encoder = schema.NewEncoder()

// Client talks to the listing, categories and brands endpoints. Cache is an
// optional feed cache for the per-navigation category and brand snapshots.
type Client struct {
	BaseUrl string
	Http    *http.Client
	Cache   *FeedCache
}

func NewClient(baseUrl string) *Client {
	return &Client{
		BaseUrl: baseUrl,
		Http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// listingPath returns the domain specific listing endpoint, falling back to
// the general catalog.
func listingPath(domain types.Domain) string {
	switch domain {
	case types.DomainMedicines:
		return "/api/medicines/"
	case types.DomainBooks:
		return "/api/books/"
	default:
		return "/api/products/"
	}
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := c.BaseUrl + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	upstreamRequests.WithLabelValues(path).Inc()
	resp, err := c.Http.Do(req)
	if err != nil {
		upstreamFailures.WithLabelValues(path).Inc()
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		upstreamFailures.WithLabelValues(path).Inc()
		return nil, fmt.Errorf("catalog %s: unexpected status %d", path, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// ListProducts runs one listing request. params come from the query resolver.
func (c *Client) ListProducts(ctx context.Context, domain types.Domain, params url.Values) (*ListingResult, error) {
	data, err := c.get(ctx, listingPath(domain), params)
	if err != nil {
		return nil, err
	}
	return decodeListing(data)
}

// ListCategories fetches the flat category feed. Feeds are read-only
// snapshots per navigation, so results are cached when a cache is attached.
func (c *Client) ListCategories(ctx context.Context, q types.CategoryQuery) ([]types.Category, error) {
	params := url.Values{}
	if err := encoder.Encode(&q, params); err != nil {
		return nil, err
	}
	key := feedKey("categories", params)

	var cached []types.Category
	if c.Cache != nil && c.Cache.Get(key, &cached) == nil {
		return cached, nil
	}
	data, err := c.get(ctx, "/api/categories/", params)
	if err != nil {
		return nil, err
	}
	categories, err := decodeCategories(data)
	if err != nil {
		return nil, err
	}
	if c.Cache != nil {
		c.Cache.Set(key, categories, 5*time.Minute)
	}
	return categories, nil
}

// ListBrands fetches the brand set scoped by the query.
func (c *Client) ListBrands(ctx context.Context, q types.BrandQuery) ([]types.Brand, error) {
	params := url.Values{}
	if err := encoder.Encode(&q, params); err != nil {
		return nil, err
	}
	key := feedKey("brands", params)

	var cached []types.Brand
	if c.Cache != nil && c.Cache.Get(key, &cached) == nil {
		return cached, nil
	}
	data, err := c.get(ctx, "/api/brands/", params)
	if err != nil {
		return nil, err
	}
	brands, err := decodeBrands(data)
	if err != nil {
		return nil, err
	}
	if c.Cache != nil {
		c.Cache.Set(key, brands, 5*time.Minute)
	}
	return brands, nil
}

func feedKey(kind string, params url.Values) string {
	return "feed:" + kind + ":" + params.Encode()
}
