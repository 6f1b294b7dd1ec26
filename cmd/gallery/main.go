// Command gallery browses the wallpaper API from a terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/wallgrid/wallpaper-gallery/internal/client"
	"github.com/wallgrid/wallpaper-gallery/internal/gallery"
	"github.com/wallgrid/wallpaper-gallery/internal/render"
	"github.com/wallgrid/wallpaper-gallery/internal/wallpaper"
)

func main() {
	_ = godotenv.Load()

	defaultAPI := os.Getenv("GALLERY_API_URL")
	if defaultAPI == "" {
		defaultAPI = "http://localhost:5000/api"
	}

	apiURL := flag.String("api", defaultAPI, "wallpaper API root")
	category := flag.String("category", gallery.AllCategories, "category to show")
	search := flag.String("q", "", "search title and tags")
	sortBy := flag.String("sort", "Trending", "Trending, Most Downloads, Newest or Random")
	id := flag.String("id", "", "show the detail page of one wallpaper")
	flag.Parse()

	if err := run(context.Background(), *apiURL, *category, *search, *sortBy, *id); err != nil {
		slog.Error("gallery failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, apiURL, category, search, sortBy, id string) error {
	api := client.NewClient(apiURL)
	out := render.New(os.Stdout)

	if id != "" {
		detail := gallery.NewLoader[wallpaper.Wallpaper](nil)
		state, _ := detail.Load(ctx, func(ctx context.Context) (wallpaper.Wallpaper, error) {
			return api.FetchWallpaperByID(ctx, id)
		})
		if state.Status == gallery.StatusFailed {
			if errors.Is(state.Err, wallpaper.ErrNotFound) {
				_, err := fmt.Fprintf(os.Stdout, "Wallpaper %s not found.\n", id)
				return err
			}
			return out.Failure("wallpaper details", state.Err)
		}
		return out.Detail(state.Data)
	}

	key, err := gallery.ParseSortKey(sortBy)
	if err != nil {
		return err
	}

	session := gallery.NewSession(nil)
	session.SetCategory(category)
	session.SetSearch(search)
	if err := session.SetSort(key); err != nil {
		return err
	}

	fallback := false
	state := session.Load(ctx, func(ctx context.Context) ([]wallpaper.Wallpaper, error) {
		listing, err := api.FetchWallpapers(ctx)
		fallback = listing.Fallback
		return listing.Wallpapers, err
	})
	if state.Status == gallery.StatusFailed {
		return out.Failure("wallpapers", state.Err)
	}
	if fallback {
		slog.Warn("API served its fallback collection")
	}

	if err := out.Categories(session.Categories(), session.State().Category); err != nil {
		return err
	}
	view, err := session.Displayed()
	if err != nil {
		return err
	}
	return out.Gallery(view)
}
