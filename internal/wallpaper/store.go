package wallpaper

import (
	"context"
	"fmt"
	"log/slog"
)

// Source loads the full wallpaper collection from wherever it is kept.
type Source interface {
	Load(ctx context.Context) ([]Wallpaper, error)
	Name() string
}

// FileSource reads a JSON or YAML data document from local disk.
type FileSource struct {
	Path string
}

func (s FileSource) Load(ctx context.Context) ([]Wallpaper, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return LoadFile(s.Path)
}

func (s FileSource) Name() string { return "file:" + s.Path }

// ObjectGetter fetches the raw bytes of an object from a bucket.
type ObjectGetter interface {
	GetObject(ctx context.Context, key string) ([]byte, error)
}

// ObjectSource reads the data document from object storage.
type ObjectSource struct {
	Objects ObjectGetter
	Key     string
}

func (s ObjectSource) Load(ctx context.Context) ([]Wallpaper, error) {
	data, err := s.Objects.GetObject(ctx, s.Key)
	if err != nil {
		return nil, fmt.Errorf("fetch wallpapers object: %w", err)
	}
	return Decode(data, FormatFromPath(s.Key))
}

func (s ObjectSource) Name() string { return "object:" + s.Key }

// Listing is the result of a collection read. Fallback is set when the
// primary source failed and the built-in collection was served instead;
// Cause then holds the primary failure.
type Listing struct {
	Wallpapers []Wallpaper
	Fallback   bool
	Cause      error
}

// Store serves the collection from its source on every call. Unless strict,
// a failing source is replaced by the fallback collection.
type Store struct {
	source Source
	strict bool
	logger *slog.Logger
}

func NewStore(source Source, strict bool, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		source: source,
		strict: strict,
		logger: logger,
	}
}

// List returns the whole collection.
func (s *Store) List(ctx context.Context) (Listing, error) {
	items, err := s.source.Load(ctx)
	if err == nil {
		s.logger.Debug("wallpapers loaded", "source", s.source.Name(), "count", len(items))
		return Listing{Wallpapers: items}, nil
	}

	if s.strict {
		return Listing{}, fmt.Errorf("load wallpapers from %s: %w", s.source.Name(), err)
	}

	s.logger.Warn("serving fallback wallpapers", "source", s.source.Name(), "error", err)
	return Listing{
		Wallpapers: Fallback(),
		Fallback:   true,
		Cause:      err,
	}, nil
}
