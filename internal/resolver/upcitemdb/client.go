package upcitemdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.upcitemdb.com/prod/trial/lookup"

type Client struct {
	http    *http.Client
	baseURL string
}

func New(timeout time.Duration) *Client {
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: defaultBaseURL,
	}
}

// NewWithBaseURL is used by tests to point the client at a stub server.
func NewWithBaseURL(baseURL string, timeout time.Duration) *Client {
	c := New(timeout)
	c.baseURL = baseURL
	return c
}

type lookupResponse struct {
	Items []struct {
		Title string `json:"title"`
	} `json:"items"`
}

// LookupTitle returns the title of the first item known for the EAN, or ""
// when the trial database has no entry.
func (c *Client) LookupTitle(ctx context.Context, ean string) (string, error) {
	q := url.Values{}
	q.Set("upc", ean)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("upcitemdb lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", nil
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", nil
	}
	if len(body.Items) == 0 {
		return "", nil
	}
	return strings.TrimSpace(body.Items[0].Title), nil
}
