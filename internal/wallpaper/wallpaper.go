package wallpaper

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Wallpaper is a single gallery image with its display metadata.
type Wallpaper struct {
	ID           int      `json:"id" yaml:"id"`
	Title        string   `json:"title" yaml:"title"`
	ImageURL     string   `json:"imageUrl" yaml:"imageUrl"`
	ThumbnailURL string   `json:"thumbnailUrl" yaml:"thumbnailUrl"`
	Category     string   `json:"category" yaml:"category"`
	Tags         []string `json:"tags" yaml:"tags"`
	Resolution   string   `json:"resolution" yaml:"resolution"`
	Views        int      `json:"views" yaml:"views"`
	Downloads    int      `json:"downloads" yaml:"downloads"`
	DateAdded    string   `json:"dateAdded" yaml:"dateAdded"`
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// AddedAt parses DateAdded. The second return is false when the date is not
// a recognised ISO-8601 form.
func (w Wallpaper) AddedAt() (time.Time, bool) {
	raw := strings.TrimSpace(w.DateAdded)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Dimensions splits a "WxH" resolution.
func (w Wallpaper) Dimensions() (width, height int, ok bool) {
	left, right, found := strings.Cut(strings.ToLower(w.Resolution), "x")
	if !found {
		return 0, 0, false
	}
	width, errW := strconv.Atoi(strings.TrimSpace(left))
	height, errH := strconv.Atoi(strings.TrimSpace(right))
	if errW != nil || errH != nil || width <= 0 || height <= 0 {
		return 0, 0, false
	}
	return width, height, true
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// DownloadName is the file name offered when the full image is downloaded,
// e.g. "cosmic-nebula-wallpaper.jpg".
func (w Wallpaper) DownloadName() string {
	slug := whitespaceRun.ReplaceAllString(strings.ToLower(w.Title), "-")
	return slug + "-wallpaper.jpg"
}
