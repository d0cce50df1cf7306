package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Client is a polite HTTP client for snapshotting raw sources: fixed
// User-Agent, strict transport timeouts, bounded retries with linear
// backoff, and a request rate limit shared across all calls.
type Client struct {
	http    *http.Client
	limiter *rate.Limiter
	ua      string
	retries int
}

// NewClient creates a fetch client from configuration.
func NewClient(cfg Config) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 60
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 8
	}
	retries := cfg.Retries
	if retries <= 0 {
		retries = 3
	}

	return &Client{
		http: &http.Client{
			Transport: transport,
			Timeout:   timeoutDuration,
		},
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		ua:      cfg.UserAgent,
		retries: retries,
	}
}

// GetText fetches a URL and returns the response body as text.
func (c *Client) GetText(ctx context.Context, rawURL string) (string, error) {
	body, err := c.get(ctx, rawURL, nil)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// GetJSON fetches a URL with query parameters and decodes the JSON response.
func (c *Client) GetJSON(ctx context.Context, rawURL string, params url.Values, out any) error {
	body, err := c.get(ctx, rawURL, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", rawURL, err)
	}
	return nil
}

// FirstPlain tries candidate URLs in order and returns the first plain-text
// response. Responses that look like HTML are rejected; mirrors sometimes
// serve an HTML wrapper instead of the raw file.
func (c *Client) FirstPlain(ctx context.Context, urls []string) (string, error) {
	var lastErr error
	for _, u := range urls {
		text, err := c.GetText(ctx, u)
		if err != nil {
			lastErr = err
			continue
		}
		if strings.Contains(strings.ToLower(text), "<html") {
			lastErr = fmt.Errorf("received HTML from %s", u)
			continue
		}
		return text, nil
	}
	return "", fmt.Errorf("failed to fetch plain source from all candidates: %w", lastErr)
}

func (c *Client) get(ctx context.Context, rawURL string, params url.Values) ([]byte, error) {
	target := rawURL
	if len(params) > 0 {
		target = rawURL + "?" + params.Encode()
	}

	var lastErr error
	for attempt := 0; attempt < c.retries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", c.ua)
		req.Header.Set("Accept", "text/plain,*/*;q=0.1")

		body, err := c.do(req)
		if err == nil {
			return body, nil
		}
		lastErr = err

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(attempt+1) * 300 * time.Millisecond):
		}
	}
	return nil, fmt.Errorf("request to %s failed after %d attempts: %w", rawURL, c.retries, lastErr)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, req.URL)
	}
	return io.ReadAll(resp.Body)
}
