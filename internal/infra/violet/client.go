// Package violet talks to the public rabbit API over HTTP.
package violet

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"nabaztag/internal/domain"
)

// DefaultBaseURL is the public API endpoint.
const DefaultBaseURL = "https://api.nabaztag.com/vl/FR/api.jsp"

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Submit performs one GET with the given parameters and returns the raw
// reply bytes. The query string is assembled by hand because the service is
// sensitive to parameter order and url.Values would sort keys
// alphabetically. Values are percent-encoded here; transcoding to the
// service charset already happened upstream.
func (c *Client) Submit(ctx context.Context, params []domain.Param) ([]byte, error) {
	var query strings.Builder
	for i, p := range params {
		if i > 0 {
			query.WriteByte('&')
		}
		query.WriteString(url.QueryEscape(p.Key))
		query.WriteByte('=')
		query.WriteString(url.QueryEscape(p.Value))
	}

	sep := "?"
	if strings.Contains(c.baseURL, "?") {
		sep = "&"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+sep+query.String(), nil)
	if err != nil {
		return nil, &domain.TransportError{Err: fmt.Errorf("creating request: %w", err)}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.TransportError{Err: fmt.Errorf("sending request: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.TransportError{Err: fmt.Errorf("reading reply: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.TransportError{Err: fmt.Errorf("service returned %s", resp.Status)}
	}

	return body, nil
}
