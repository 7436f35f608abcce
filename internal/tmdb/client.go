// Package tmdb is a minimal TMDB API client for trailer video lookups.
package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.themoviedb.org"

// ErrNotFound is returned when an item doesn't exist in TMDB.
var ErrNotFound = errors.New("item not found")

// Client is a TMDB API client.
//
// Video lists are deliberately not cached: the resolver rebuilds candidates on
// every scan cycle so newly published trailers are picked up.
type Client struct {
	apiKey     string
	language   string
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a new TMDB client.
func NewClient(apiKey, language string, opts ...Option) *Client {
	c := &Client{
		apiKey:   apiKey,
		language: language,
		baseURL:  defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// MovieVideos fetches the video descriptors attached to a movie.
func (c *Client) MovieVideos(ctx context.Context, tmdbID int64) ([]Video, error) {
	return c.videos(ctx, fmt.Sprintf("/3/movie/%d/videos", tmdbID))
}

// SeriesVideos fetches the video descriptors attached to a series.
func (c *Client) SeriesVideos(ctx context.Context, tmdbID int64) ([]Video, error) {
	return c.videos(ctx, fmt.Sprintf("/3/tv/%d/videos", tmdbID))
}

// SeasonVideos fetches the video descriptors scoped to one season of a series.
func (c *Client) SeasonVideos(ctx context.Context, tmdbID int64, season int) ([]Video, error) {
	return c.videos(ctx, fmt.Sprintf("/3/tv/%d/season/%d/videos", tmdbID, season))
}

func (c *Client) videos(ctx context.Context, path string) ([]Video, error) {
	// Build request
	q := url.Values{}
	q.Set("api_key", c.apiKey)
	if c.language != "" {
		q.Set("language", c.language)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	// Execute
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	// Handle errors
	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("TMDB API error: %s", resp.Status)
	}

	// Decode
	var payload videosResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return payload.Results, nil
}
