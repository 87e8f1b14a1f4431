package icecat

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://live.icecat.biz/api"

// Result is one usable catalog hit. Category and Brand are optional; Title is
// always non-empty.
type Result struct {
	Title    string
	Category string
	Brand    string
}

type Client struct {
	http    *http.Client
	baseURL string
	user    string
}

func New(user string, timeout time.Duration) *Client {
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: defaultBaseURL,
		user:    user,
	}
}

// NewWithBaseURL is used by tests to point the client at a stub server.
func NewWithBaseURL(user, baseURL string, timeout time.Duration) *Client {
	c := New(user, timeout)
	c.baseURL = baseURL
	return c
}

// Lookup queries the catalog for an EAN in the given language. A nil result
// means the service answered but no usable title could be extracted.
func (c *Client) Lookup(ctx context.Context, ean, lang string) (*Result, error) {
	q := url.Values{}
	q.Set("UserName", c.user)
	q.Set("Language", lang)
	q.Set("GTIN", ean)
	q.Set("Output", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("icecat lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}

	var tree map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&tree); err != nil {
		return nil, nil
	}

	title, ok := ExtractTitle(tree)
	if !ok {
		return nil, nil
	}

	result := &Result{Title: title}
	if category, ok := ExtractCategory(tree); ok {
		result.Category = category
	}
	if brand, ok := ExtractBrand(tree); ok {
		result.Brand = brand
	}
	return result, nil
}
