package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/wallgrid/wallpaper-gallery/internal/client"
	"github.com/wallgrid/wallpaper-gallery/internal/config"
	"github.com/wallgrid/wallpaper-gallery/internal/gallery"
	"github.com/wallgrid/wallpaper-gallery/internal/r2"
	"github.com/wallgrid/wallpaper-gallery/internal/wallpaper"
)

// FunctionPrefix is the path the API was reachable under when deployed as a
// single serverless function.
const FunctionPrefix = "/.netlify/functions/api"

const requestTimeout = 15 * time.Second

type App struct {
	cfg    config.Config
	store  *wallpaper.Store
	sorter *gallery.Sorter
	logger *slog.Logger
}

// New builds the wallpaper source described by cfg: the R2 object when R2
// credentials are configured, the local data document otherwise.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var source wallpaper.Source = wallpaper.FileSource{Path: cfg.WallpapersPath}
	if cfg.UseR2() {
		objects, err := r2.NewClient(ctx, cfg.R2Endpoint, cfg.R2Bucket, cfg.R2AccessKeyID, cfg.R2SecretAccessKey)
		if err != nil {
			return nil, fmt.Errorf("init r2 client: %w", err)
		}
		source = wallpaper.ObjectSource{Objects: objects, Key: cfg.R2Key}
	}
	logger.Info("wallpaper source configured", "source", source.Name(), "strict", cfg.Strict)

	return NewWithStore(cfg, wallpaper.NewStore(source, cfg.Strict, logger), logger), nil
}

// NewWithStore wires the HTTP API around an existing store.
func NewWithStore(cfg config.Config, store *wallpaper.Store, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		cfg:    cfg,
		store:  store,
		sorter: &gallery.Sorter{},
		logger: logger,
	}
}

func (a *App) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(a.logRequests)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:     a.allowedOrigins(),
		AllowedMethods:     []string{"GET", "OPTIONS"},
		AllowedHeaders:     []string{"Accept", "Content-Type"},
		ExposedHeaders:     []string{client.SourceHeader},
		OptionsPassthrough: true,
	}))
	r.Use(answerOptions)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, errors.New("Not Found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, errors.New("Method Not Allowed"))
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	routes := func(api chi.Router) {
		api.Get("/wallpapers", a.handleListWallpapers)
		api.Get("/wallpapers/{id}", a.handleGetWallpaper)
		api.Get("/categories", a.handleListCategories)
		api.Get("/gallery", a.handleGallery)
	}
	r.Route("/api", routes)
	r.Route(FunctionPrefix, routes)

	return r
}

func (a *App) allowedOrigins() []string {
	if len(a.cfg.AllowedOrigins) == 0 {
		return []string{"*"}
	}
	return a.cfg.AllowedOrigins
}

// listWallpapers reads the collection and tags the response with its source.
// It writes the error response itself and reports false on failure.
func (a *App) listWallpapers(w http.ResponseWriter, r *http.Request) (wallpaper.Listing, bool) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	listing, err := a.store.List(ctx)
	if err != nil {
		a.logger.Error("wallpapers unavailable", "error", err)
		writeError(w, http.StatusServiceUnavailable, errors.New("wallpapers unavailable"))
		return wallpaper.Listing{}, false
	}

	source := client.SourcePrimary
	if listing.Fallback {
		source = client.SourceFallback
	}
	w.Header().Set(client.SourceHeader, source)
	return listing, true
}

func (a *App) handleListWallpapers(w http.ResponseWriter, r *http.Request) {
	listing, ok := a.listWallpapers(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, listing.Wallpapers)
}

func (a *App) handleGetWallpaper(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	listing, ok := a.listWallpapers(w, r)
	if !ok {
		return
	}

	item, err := wallpaper.Lookup(listing.Wallpapers, id)
	if err != nil {
		writeError(w, http.StatusNotFound, fmt.Errorf("wallpaper %s not found", id))
		return
	}
	writeJSON(w, http.StatusOK, DetailView{Wallpaper: item, DownloadName: item.DownloadName()})
}

func (a *App) handleListCategories(w http.ResponseWriter, r *http.Request) {
	listing, ok := a.listWallpapers(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, gallery.Categories(listing.Wallpapers))
}

func (a *App) handleGallery(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	key, err := gallery.ParseSortKey(query.Get("sort"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	state := gallery.ViewState{
		Category: gallery.AllCategories,
		Search:   query.Get("q"),
		Sort:     key,
	}
	if c := query.Get("category"); c != "" {
		state.Category = c
	}

	listing, ok := a.listWallpapers(w, r)
	if !ok {
		return
	}

	view, err := gallery.Derive(listing.Wallpapers, state, a.sorter)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, http.StatusOK, GalleryView{
		Items:      view.Items,
		Total:      view.Total,
		Empty:      view.Empty,
		Message:    view.Message(),
		Categories: gallery.Categories(listing.Wallpapers),
		Category:   state.Category,
		Search:     state.Search,
		Sort:       state.Sort.String(),
	})
}

// DetailView is a single wallpaper with the name its download is saved as.
type DetailView struct {
	wallpaper.Wallpaper
	DownloadName string `json:"downloadName"`
}

// GalleryView is a server-side derived gallery page.
type GalleryView struct {
	Items      []wallpaper.Wallpaper `json:"items"`
	Total      int                   `json:"total"`
	Empty      gallery.EmptyReason   `json:"empty"`
	Message    string                `json:"message,omitempty"`
	Categories []string              `json:"categories"`
	Category   string                `json:"category"`
	Search     string                `json:"search"`
	Sort       string                `json:"sort"`
}

// answerOptions ends every OPTIONS request with 204 once the CORS
// middleware has set its headers.
func answerOptions(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (a *App) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		a.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]any{
		"error":  err.Error(),
		"status": status,
	})
}
