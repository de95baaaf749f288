// Package yelp wraps the Yelp Fusion business search endpoint.
package yelp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/amestri/cineshelf/pkg/errors"
)

const defaultBaseURL = "https://api.yelp.com/v3"

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithBaseURL is for tests pointing at a local server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

type Business struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	ImageURL string   `json:"image_url"`
	URL      string   `json:"url"`
	Rating   float64  `json:"rating"`
	Phone    string   `json:"display_phone"`
	Distance float64  `json:"distance"`
	Location Location `json:"location"`
}

type Location struct {
	Address1       string   `json:"address1"`
	City           string   `json:"city"`
	ZipCode        string   `json:"zip_code"`
	State          string   `json:"state"`
	DisplayAddress []string `json:"display_address"`
}

type SearchResult struct {
	Total      int        `json:"total"`
	Businesses []Business `json:"businesses"`
}

// SearchBusinesses queries /businesses/search. Any upstream failure,
// transport or non-200, surfaces as ErrUpstream so the HTTP layer maps it
// to a bad gateway.
func (c *Client) SearchBusinesses(ctx context.Context, term, location string) (*SearchResult, error) {
	endpoint := fmt.Sprintf("%s/businesses/search?term=%s&location=%s",
		c.baseURL, url.QueryEscape(term), url.QueryEscape(location))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yelp search: %v: %w", err, errors.ErrUpstream)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yelp search: status %d: %w", resp.StatusCode, errors.ErrUpstream)
	}

	var result SearchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("yelp search: decode: %v: %w", err, errors.ErrUpstream)
	}

	if result.Businesses == nil {
		result.Businesses = []Business{}
	}
	return &result, nil
}
