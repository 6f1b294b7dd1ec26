package gallery

import (
	"cmp"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/wallgrid/wallpaper-gallery/internal/wallpaper"
)

// Sorter orders wallpapers by a SortKey. The zero value shuffles with the
// global random generator; NewSorter gives reproducible Random ordering.
type Sorter struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSorter returns a Sorter whose Random ordering is driven by src.
func NewSorter(src rand.Source) *Sorter {
	return &Sorter{rng: rand.New(src)}
}

// Sort is a convenience for a zero Sorter.
func Sort(items []wallpaper.Wallpaper, key SortKey) []wallpaper.Wallpaper {
	var s Sorter
	return s.Sort(items, key)
}

// Sort returns a newly allocated, ordered copy of items. Every key except
// SortRandom is stable and descending. Unknown keys keep input order.
func (s *Sorter) Sort(items []wallpaper.Wallpaper, key SortKey) []wallpaper.Wallpaper {
	out := slices.Clone(items)
	if out == nil {
		out = []wallpaper.Wallpaper{}
	}

	switch key {
	case SortTrending:
		slices.SortStableFunc(out, func(a, b wallpaper.Wallpaper) int {
			return cmp.Compare(b.Views, a.Views)
		})
	case SortMostDownloads:
		slices.SortStableFunc(out, func(a, b wallpaper.Wallpaper) int {
			return cmp.Compare(b.Downloads, a.Downloads)
		})
	case SortNewest:
		sortNewest(out)
	case SortRandom:
		s.shuffle(out)
	}
	return out
}

type dated struct {
	w     wallpaper.Wallpaper
	at    time.Time
	valid bool
}

// sortNewest parses each date once. Unparsable dates compare as the
// minimum timestamp and therefore sort last.
func sortNewest(out []wallpaper.Wallpaper) {
	keyed := make([]dated, len(out))
	for i, w := range out {
		at, ok := w.AddedAt()
		keyed[i] = dated{w: w, at: at, valid: ok}
	}

	slices.SortStableFunc(keyed, func(a, b dated) int {
		switch {
		case a.valid && b.valid:
			return b.at.Compare(a.at)
		case a.valid:
			return -1
		case b.valid:
			return 1
		default:
			return 0
		}
	})

	for i := range keyed {
		out[i] = keyed[i].w
	}
}

func (s *Sorter) shuffle(out []wallpaper.Wallpaper) {
	swap := func(i, j int) { out[i], out[j] = out[j], out[i] }

	if s == nil || s.rng == nil {
		rand.Shuffle(len(out), swap)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng.Shuffle(len(out), swap)
}
