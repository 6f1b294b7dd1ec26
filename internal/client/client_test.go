package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wallgrid/wallpaper-gallery/internal/client"
	"github.com/wallgrid/wallpaper-gallery/internal/wallpaper"
)

func newServer(t *testing.T, status int, source string, body any) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/wallpapers" {
			http.NotFound(w, r)
			return
		}
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		if source != "" {
			w.Header().Set(client.SourceHeader, source)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestFetchWallpapers(t *testing.T) {
	ts := newServer(t, http.StatusOK, client.SourcePrimary, wallpaper.Fallback())

	listing, err := client.NewClient(ts.URL + "/api/").FetchWallpapers(context.Background())
	require.NoError(t, err)
	assert.False(t, listing.Fallback)
	assert.Equal(t, wallpaper.Fallback(), listing.Wallpapers)
}

func TestFetchWallpapersReportsFallback(t *testing.T) {
	ts := newServer(t, http.StatusOK, client.SourceFallback, wallpaper.Fallback())

	listing, err := client.NewClient(ts.URL + "/api").FetchWallpapers(context.Background())
	require.NoError(t, err)
	assert.True(t, listing.Fallback)
}

func TestFetchWallpapersEmptyIsNotAnError(t *testing.T) {
	ts := newServer(t, http.StatusOK, "", []wallpaper.Wallpaper{})

	listing, err := client.NewClient(ts.URL + "/api").FetchWallpapers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, listing.Wallpapers)
	assert.Empty(t, listing.Wallpapers)
}

func TestFetchWallpapersErrors(t *testing.T) {
	t.Run("non 2xx", func(t *testing.T) {
		ts := newServer(t, http.StatusServiceUnavailable, "", map[string]string{"error": "down"})
		_, err := client.NewClient(ts.URL + "/api").FetchWallpapers(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "503")
	})

	t.Run("malformed body", func(t *testing.T) {
		ts := newServer(t, http.StatusOK, "", map[string]string{"not": "an array"})
		_, err := client.NewClient(ts.URL + "/api").FetchWallpapers(context.Background())
		assert.Error(t, err)
	})

	t.Run("invalid records", func(t *testing.T) {
		ts := newServer(t, http.StatusOK, "", []wallpaper.Wallpaper{{ID: 1, Category: "Space", Views: -5}})
		_, err := client.NewClient(ts.URL + "/api").FetchWallpapers(context.Background())
		assert.ErrorIs(t, err, wallpaper.ErrInvalid)
	})

	t.Run("cancelled", func(t *testing.T) {
		ts := newServer(t, http.StatusOK, "", wallpaper.Fallback())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := client.NewClient(ts.URL + "/api").FetchWallpapers(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestFetchWallpaperByID(t *testing.T) {
	ts := newServer(t, http.StatusOK, client.SourcePrimary, wallpaper.Fallback())
	c := client.NewClient(ts.URL + "/api")

	w, err := c.FetchWallpaperByID(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "Mountain Sunrise", w.Title)

	_, err = c.FetchWallpaperByID(context.Background(), "99")
	assert.ErrorIs(t, err, wallpaper.ErrNotFound)

	_, err = c.FetchWallpaperByID(context.Background(), "abc")
	assert.ErrorIs(t, err, wallpaper.ErrNotFound)
}
