package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"shopquery/internal/metrics"
)

// ErrUnavailable marks catalog failures so the handler can answer with
// an upstream-unavailable status instead of a generic error.
var ErrUnavailable = errors.New("product catalog unavailable")

// Client fetches the full product list from the external catalog
// service. The upstream has no filtering capability, so every request
// fetches everything; no caching across requests.
type Client struct {
	url        string
	httpClient *http.Client
}

func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Fetch returns the full catalog. Unlike the model call there is no
// sensible fallback here, so every failure wraps ErrUnavailable.
func (c *Client) Fetch(ctx context.Context) ([]Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.CatalogFetchFailures.Inc()
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.CatalogFetchFailures.Inc()
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var products []Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		metrics.CatalogFetchFailures.Inc()
		return nil, fmt.Errorf("%w: decode: %v", ErrUnavailable, err)
	}

	return products, nil
}
