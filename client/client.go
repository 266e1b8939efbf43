// Package client is the browse-session SDK for the freelancima API. It
// mirrors what the marketplace frontend does: lazily cached category
// listings, keyword search with a local fallback, advanced filtering,
// fixed-size pagination and card rendering.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Listing is a freelancer record as it appears on the wire. Price is kept
// as a raw JSON number/string: listings with a non-numeric price are
// tolerated and simply never satisfy a price bound.
type Listing struct {
	ID               int64       `json:"id"`
	Username         string      `json:"username"`
	ProfileLink      string      `json:"profile_link"`
	ProfileImage     string      `json:"profile_image"`
	Rating           float64     `json:"rating"`
	Reviews          int         `json:"reviews"`
	ShortDescription string      `json:"short_description"`
	Price            json.Number `json:"price"`
	Category         string      `json:"category"`
	CreatedAt        string      `json:"created_at,omitempty"`
}

// PriceInt parses the listing price as an integer. ok is false for
// non-numeric prices.
func (l Listing) PriceInt() (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(l.Price.String()))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Metadata is the store-level "last refreshed" descriptor.
type Metadata struct {
	LastUpdated string `json:"last_updated"`
	UpdatedBy   string `json:"updated_by"`
}

// Envelope is the browse endpoint response shape.
type Envelope struct {
	Metadata   Metadata             `json:"metadata"`
	Categories map[string][]Listing `json:"categories"`
	Latest     []Listing            `json:"latest_freelancers"`
}

// APIError is a non-2xx or error-enveloped response from the service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

// Client calls the freelancer query service.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client for the given base URL (e.g.
// "http://localhost:8080/v1"). A nil httpClient uses a 15s-timeout default.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

func (c *Client) browse(ctx context.Context, params url.Values) (*Envelope, error) {
	reqURL := c.baseURL + "/freelancers?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var failure struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&failure)
		if failure.Message == "" {
			failure.Message = resp.Status
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: failure.Message}
	}

	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, err
	}
	return &env, nil
}

// All fetches every listing grouped by category.
func (c *Client) All(ctx context.Context) (*Envelope, error) {
	return c.browse(ctx, url.Values{"action": {"all"}})
}

// Category fetches listings of a single category.
func (c *Client) Category(ctx context.Context, category string) (*Envelope, error) {
	return c.browse(ctx, url.Values{"action": {"category"}, "category": {category}})
}

// Search fetches listings matching the keyword, grouped by category.
func (c *Client) Search(ctx context.Context, keyword string) (*Envelope, error) {
	return c.browse(ctx, url.Values{"action": {"search"}, "search": {keyword}})
}

// Latest fetches the most recently created listings. limit <= 0 leaves
// the server default in effect.
func (c *Client) Latest(ctx context.Context, limit int) (*Envelope, error) {
	params := url.Values{"action": {"latest"}}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	return c.browse(ctx, params)
}
