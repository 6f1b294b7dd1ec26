package gallery

import (
	"strings"

	"github.com/wallgrid/wallpaper-gallery/internal/wallpaper"
)

// FilterCategory keeps the wallpapers whose category equals category
// exactly. AllCategories returns items itself; callers must not mutate it.
func FilterCategory(items []wallpaper.Wallpaper, category string) []wallpaper.Wallpaper {
	if category == AllCategories {
		return items
	}

	out := make([]wallpaper.Wallpaper, 0, len(items))
	for _, w := range items {
		if w.Category == category {
			out = append(out, w)
		}
	}
	return out
}

// Categories returns AllCategories followed by the distinct categories of
// items in first-seen order.
func Categories(items []wallpaper.Wallpaper) []string {
	seen := make(map[string]struct{}, len(items))
	out := []string{AllCategories}
	for _, w := range items {
		if _, ok := seen[w.Category]; ok {
			continue
		}
		seen[w.Category] = struct{}{}
		out = append(out, w.Category)
	}
	return out
}

// Search keeps the wallpapers whose title or any tag contains term,
// case-insensitively. A blank term returns items itself.
func Search(items []wallpaper.Wallpaper, term string) []wallpaper.Wallpaper {
	term = strings.TrimSpace(term)
	if term == "" {
		return items
	}
	term = strings.ToLower(term)

	out := make([]wallpaper.Wallpaper, 0, len(items))
	for _, w := range items {
		if matches(w, term) {
			out = append(out, w)
		}
	}
	return out
}

func matches(w wallpaper.Wallpaper, term string) bool {
	if strings.Contains(strings.ToLower(w.Title), term) {
		return true
	}
	for _, tag := range w.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}
