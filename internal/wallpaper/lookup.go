package wallpaper

import (
	"errors"
	"strconv"
	"strings"
)

// ErrNotFound is returned when no wallpaper matches the requested id.
var ErrNotFound = errors.New("wallpaper not found")

// Find returns the wallpaper with the given id.
func Find(items []Wallpaper, id int) (Wallpaper, error) {
	for _, w := range items {
		if w.ID == id {
			return w, nil
		}
	}
	return Wallpaper{}, ErrNotFound
}

// Lookup resolves an id taken from a URL path segment. Input that is not a
// base-10 integer can never match and yields ErrNotFound.
func Lookup(items []Wallpaper, raw string) (Wallpaper, error) {
	id, err := ParseID(raw)
	if err != nil {
		return Wallpaper{}, ErrNotFound
	}
	return Find(items, id)
}

// ParseID converts a path segment into a wallpaper id.
func ParseID(raw string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(raw))
}
