package catalog

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	log "github.com/sirupsen/logrus"
	"resty.dev/v3"

	"haat/browse/internal/domain"
)

// Client fetches market catalogs from the delivery backend over REST.
type Client struct {
	baseURL    string
	httpClient *resty.Client
}

// Compile-time check.
var _ Service = (*Client)(nil)

// NewClient creates a REST catalog client. baseURL is the API root, e.g.
// "https://user-app.example.delivery/api".
func NewClient(baseURL string, timeout time.Duration) *Client {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		SetHeader("Accept", "application/json")

	return &Client{
		baseURL:    baseURL,
		httpClient: client,
	}
}

// Close releases the underlying HTTP client resources.
func (c *Client) Close() error { return c.httpClient.Close() }

// FetchMarket loads GET /markets/{id} and normalizes it into the strict
// model.
func (c *Client) FetchMarket(ctx context.Context, marketID int) (*domain.Market, error) {
	url := fmt.Sprintf("%s/markets/%d", c.baseURL, marketID)

	body, err := c.fetchJSON(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch market %d: %w", marketID, err)
	}

	var raw domain.APIMarket
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode market %d: %w", marketID, err)
	}

	m := domain.Normalize(&raw)
	log.WithFields(log.Fields{
		"market_id":  m.ID,
		"categories": len(m.Categories),
		"items":      m.ItemCount(),
	}).Debug("market fetched")
	return m, nil
}

// FetchCategory loads GET /markets/{id}/categories/{categoryId}.
func (c *Client) FetchCategory(ctx context.Context, marketID, categoryID int) (*domain.Category, error) {
	url := fmt.Sprintf("%s/markets/%d/categories/%d", c.baseURL, marketID, categoryID)

	body, err := c.fetchJSON(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch category %d/%d: %w", marketID, categoryID, err)
	}

	var raw domain.APICategoryDetail
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode category %d/%d: %w", marketID, categoryID, err)
	}

	cat := domain.NormalizeCategory(raw)
	return &cat, nil
}

func (c *Client) fetchJSON(ctx context.Context, url string) ([]byte, error) {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		return nil, err
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.IsError() {
		return nil, fmt.Errorf("http %d: %s", resp.StatusCode(), resp.Status())
	}
	return resp.Bytes(), nil
}
