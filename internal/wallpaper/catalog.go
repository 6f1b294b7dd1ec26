package wallpaper

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalid marks a collection that breaks the record invariants.
var ErrInvalid = errors.New("invalid wallpaper collection")

// Format identifies how a data document is encoded.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the document format from a file name or object key.
// Anything that is not .yaml/.yml is treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode parses a data document holding an array of wallpapers and
// validates the result. Unknown fields are rejected.
func Decode(data []byte, format Format) ([]Wallpaper, error) {
	var items []Wallpaper
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&items); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode wallpapers: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&items); err != nil {
			return nil, fmt.Errorf("decode wallpapers: %w", err)
		}
	default:
		return nil, fmt.Errorf("decode wallpapers: unsupported format %q", format)
	}

	if items == nil {
		items = []Wallpaper{}
	}
	if err := Validate(items); err != nil {
		return nil, err
	}
	return items, nil
}

// LoadFile reads and decodes a local data document.
func LoadFile(path string) ([]Wallpaper, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read wallpapers: %w", err)
	}
	return Decode(data, FormatFromPath(path))
}

// Validate checks the collection invariants: positive unique ids,
// non-empty categories and non-negative counters.
func Validate(items []Wallpaper) error {
	seen := make(map[int]struct{}, len(items))
	for i, w := range items {
		if w.ID <= 0 {
			return fmt.Errorf("%w: record %d has non-positive id %d", ErrInvalid, i, w.ID)
		}
		if _, dup := seen[w.ID]; dup {
			return fmt.Errorf("%w: duplicate id %d", ErrInvalid, w.ID)
		}
		seen[w.ID] = struct{}{}

		if strings.TrimSpace(w.Category) == "" {
			return fmt.Errorf("%w: wallpaper %d has empty category", ErrInvalid, w.ID)
		}
		if w.Views < 0 {
			return fmt.Errorf("%w: wallpaper %d has negative views", ErrInvalid, w.ID)
		}
		if w.Downloads < 0 {
			return fmt.Errorf("%w: wallpaper %d has negative downloads", ErrInvalid, w.ID)
		}
	}
	return nil
}
