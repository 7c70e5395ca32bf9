package network

import (
	"context"
	"errors"
	"fmt"
	"io"

	fhttp "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
)

var ErrRequestFailed = errors.New("request failed")

const (
	requestTimeoutSeconds = 10
	userAgent             = "jobradar/1.0 (+https://github.com/MrJJimenez/jobradar)"
)

// Client wraps the outbound HTTP client shared by provider adapters. Every
// request carries a descriptive User-Agent and a bounded timeout.
type Client struct {
	http tls_client.HttpClient
}

func NewClient() (*Client, error) {
	client, err := tls_client.NewHttpClient(
		tls_client.NewNoopLogger(),
		tls_client.WithClientProfile(profiles.Chrome_120),
		tls_client.WithTimeoutSeconds(requestTimeoutSeconds),
	)
	if err != nil {
		return nil, err
	}
	return &Client{http: client}, nil
}

// Get issues a GET against target and returns the response body. Non-2xx
// statuses are errors so adapters degrade to empty results.
func (c *Client) Get(ctx context.Context, target string, headers map[string]string) ([]byte, error) {
	req, err := fhttp.NewRequestWithContext(ctx, fhttp.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json, application/xml;q=0.9, */*;q=0.8")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: http %d", ErrRequestFailed, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
