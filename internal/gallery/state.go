package gallery

import (
	"errors"
	"fmt"
	"strings"
)

// AllCategories is the category selection that disables category filtering.
const AllCategories = "All"

// ErrUnknownSortKey is returned by ParseSortKey for unrecognised input.
var ErrUnknownSortKey = errors.New("unknown sort key")

// SortKey selects the ordering of the displayed wallpapers.
type SortKey int

const (
	SortTrending SortKey = iota
	SortMostDownloads
	SortNewest
	SortRandom
)

var sortKeyNames = map[SortKey]string{
	SortTrending:      "Trending",
	SortMostDownloads: "MostDownloads",
	SortNewest:        "Newest",
	SortRandom:        "Random",
}

func (k SortKey) String() string {
	if name, ok := sortKeyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("SortKey(%d)", int(k))
}

// Valid reports whether k is one of the declared sort keys.
func (k SortKey) Valid() bool {
	_, ok := sortKeyNames[k]
	return ok
}

// Label is the text shown in the sort selector.
func (k SortKey) Label() string {
	if k == SortMostDownloads {
		return "Most Downloads"
	}
	return k.String()
}

// ParseSortKey accepts enum names and selector labels, ignoring case,
// spaces, dashes and underscores. An empty string selects Trending.
func ParseSortKey(raw string) (SortKey, error) {
	norm := strings.ToLower(strings.TrimSpace(raw))
	norm = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(norm)

	switch norm {
	case "", "trending":
		return SortTrending, nil
	case "mostdownloads", "downloads":
		return SortMostDownloads, nil
	case "newest":
		return SortNewest, nil
	case "random":
		return SortRandom, nil
	}
	return SortTrending, fmt.Errorf("%w: %q", ErrUnknownSortKey, raw)
}

// SortKeys lists every sort key in selector order.
func SortKeys() []SortKey {
	return []SortKey{SortTrending, SortMostDownloads, SortNewest, SortRandom}
}

// ViewState holds the three independent view controls.
type ViewState struct {
	Category string
	Search   string
	Sort     SortKey
}

// DefaultViewState is the state of a freshly opened gallery.
func DefaultViewState() ViewState {
	return ViewState{Category: AllCategories, Sort: SortTrending}
}
