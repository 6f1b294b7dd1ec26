package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/wallgrid/wallpaper-gallery/internal/wallpaper"
)

// SourceHeader names the response header telling primary data apart from
// the fallback collection.
const (
	SourceHeader   = "X-Wallpaper-Source"
	SourcePrimary  = "primary"
	SourceFallback = "fallback"
)

// DefaultTimeout bounds a single fetch.
const DefaultTimeout = 10 * time.Second

// Listing is a fetched collection. Fallback is true when the API served its
// built-in collection because its own source failed.
type Listing struct {
	Wallpapers []wallpaper.Wallpaper
	Fallback   bool
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient targets an API root such as "http://localhost:5000/api".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

func (c *Client) FetchWallpapers(ctx context.Context) (Listing, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/wallpapers", c.baseURL), nil)
	if err != nil {
		return Listing{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Listing{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Listing{}, fmt.Errorf("read wallpapers response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Listing{}, fmt.Errorf("wallpapers request failed (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var items []wallpaper.Wallpaper
	if err := json.Unmarshal(body, &items); err != nil {
		return Listing{}, fmt.Errorf("decode wallpapers: %w", err)
	}
	if items == nil {
		items = []wallpaper.Wallpaper{}
	}
	if err := wallpaper.Validate(items); err != nil {
		return Listing{}, err
	}

	return Listing{
		Wallpapers: items,
		Fallback:   resp.Header.Get(SourceHeader) == SourceFallback,
	}, nil
}

// FetchWallpaperByID fetches the whole collection and picks one record out
// of it. A missing or non-numeric id yields wallpaper.ErrNotFound.
func (c *Client) FetchWallpaperByID(ctx context.Context, rawID string) (wallpaper.Wallpaper, error) {
	listing, err := c.FetchWallpapers(ctx)
	if err != nil {
		return wallpaper.Wallpaper{}, err
	}
	return wallpaper.Lookup(listing.Wallpapers, rawID)
}
