// Package storefront is the browsing side of the catalog: an HTTP client for
// the public API and the filter state a shop front keeps between requests.
package storefront

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Slug            string           `json:"slug"`
	Price           decimal.Decimal  `json:"price"`
	OriginalPrice   *decimal.Decimal `json:"originalPrice,omitempty"`
	PriceLabel      string           `json:"priceLabel"`
	DiscountPercent int              `json:"discountPercent"`
	MaterialType    string           `json:"materialType"`
	InStock         bool             `json:"inStock"`
	Category        struct {
		Name string `json:"name"`
		Slug string `json:"slug"`
	} `json:"category"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

type ProductList struct {
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
}

type Suggestion struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Type  string `json:"type"`
	Count *int64 `json:"count,omitempty"`
}

// Fetcher is what FilterState needs from the catalog API.
type Fetcher interface {
	Products(ctx context.Context, query url.Values) (*ProductList, error)
	Suggestions(ctx context.Context, text string) ([]Suggestion, error)
}

type Client struct {
	client  *http.Client
	baseURL string
}

func NewClient(baseURL string) *Client {
	return &Client{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (c *Client) Products(ctx context.Context, query url.Values) (*ProductList, error) {
	var list ProductList
	if err := c.get(ctx, "/api/products?"+query.Encode(), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) Suggestions(ctx context.Context, text string) ([]Suggestion, error) {
	var resp struct {
		Suggestions []Suggestion `json:"suggestions"`
	}
	if err := c.get(ctx, "/api/search/suggestions?q="+url.QueryEscape(text), &resp); err != nil {
		return nil, err
	}
	return resp.Suggestions, nil
}

// APIError is a non-2xx answer from the catalog API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("catalog API error: status %d: %s", e.Status, e.Message)
}

func (c *Client) get(ctx context.Context, path string, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		log.Printf("Client: request to %s failed: %v", path, err)
		return fmt.Errorf("failed to perform request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(body, &apiErr)
		return &APIError{Status: resp.StatusCode, Message: apiErr.Error}
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("failed to parse response from %s: %w", path, err)
	}
	return nil
}
