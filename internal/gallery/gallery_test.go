package gallery

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wallgrid/wallpaper-gallery/internal/wallpaper"
)

func scenario() []wallpaper.Wallpaper {
	return []wallpaper.Wallpaper{
		{ID: 1, Title: "Cosmic Nebula", Category: "Space", Views: 12453, Downloads: 3782, Tags: []string{"galaxy", "stars"}, DateAdded: "2023-04-15"},
		{ID: 2, Title: "Mountain Sunrise", Category: "Nature", Views: 9876, Downloads: 2345, Tags: []string{"mountains"}, DateAdded: "2023-05-20"},
	}
}

func mixed() []wallpaper.Wallpaper {
	return []wallpaper.Wallpaper{
		{ID: 1, Title: "Red Dunes", Category: "Nature", Views: 50, Downloads: 5, Tags: []string{"Desert"}, DateAdded: "2023-01-01"},
		{ID: 2, Title: "Blue Orbit", Category: "Space", Views: 80, Downloads: 5, Tags: []string{"planet"}, DateAdded: "not a date"},
		{ID: 3, Title: "Green Hills", Category: "Nature", Views: 50, Downloads: 9, Tags: []string{"grass", "STARS at night"}, DateAdded: "2023-03-01"},
		{ID: 4, Title: "Starfield", Category: "Space", Views: 10, Downloads: 1, Tags: nil, DateAdded: "2023-03-01"},
		{ID: 5, Title: "City Glow", Category: "Urban", Views: 80, Downloads: 9, Tags: []string{"neon"}, DateAdded: "2023-02-10T08:30:00Z"},
		{ID: 6, Title: "nature study", Category: "nature", Views: 1, Downloads: 0, Tags: []string{"lowercase"}, DateAdded: ""},
	}
}

func ids(items []wallpaper.Wallpaper) []int {
	out := make([]int, len(items))
	for i, w := range items {
		out[i] = w.ID
	}
	return out
}

func TestScenario(t *testing.T) {
	c := scenario()

	assert.Equal(t, []int{1, 2}, ids(FilterCategory(c, AllCategories)))
	assert.Equal(t, []int{1}, ids(Search(c, "star")))
	assert.Equal(t, []int{1, 2}, ids(Sort(c, SortTrending)))
	assert.Equal(t, []int{2, 1}, ids(Sort(c, SortNewest)))

	got, err := wallpaper.Lookup(c, "2")
	require.NoError(t, err)
	assert.Equal(t, 2, got.ID)

	_, err = wallpaper.Lookup(c, "99")
	assert.ErrorIs(t, err, wallpaper.ErrNotFound)
	_, err = wallpaper.Lookup(c, "abc")
	assert.ErrorIs(t, err, wallpaper.ErrNotFound)
}

func TestFilterCategory(t *testing.T) {
	c := mixed()

	t.Run("exact and ordered", func(t *testing.T) {
		got := FilterCategory(c, "Nature")
		assert.Equal(t, []int{1, 3}, ids(got))
		for _, w := range got {
			assert.Equal(t, "Nature", w.Category)
		}
	})

	t.Run("case sensitive", func(t *testing.T) {
		assert.Equal(t, []int{6}, ids(FilterCategory(c, "nature")))
	})

	t.Run("all is identity", func(t *testing.T) {
		got := FilterCategory(c, AllCategories)
		require.Len(t, got, len(c))
		assert.Same(t, &c[0], &got[0])
	})

	t.Run("unknown category", func(t *testing.T) {
		assert.Empty(t, FilterCategory(c, "Cars"))
	})
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []string{"All", "Nature", "Space", "Urban", "nature"}, Categories(mixed()))
	assert.Equal(t, []string{"All"}, Categories(nil))
}

func TestSearch(t *testing.T) {
	c := mixed()

	tests := []struct {
		name string
		term string
		want []int
	}{
		{"blank returns input", "   ", []int{1, 2, 3, 4, 5, 6}},
		{"title substring", "orb", []int{2}},
		{"tag match is case insensitive", "desert", []int{1}},
		{"title or tag", "star", []int{3, 4}},
		{"term is trimmed and lowered", "  NEON ", []int{5}},
		{"single character", "g", []int{3, 5}},
		{"no match", "zebra", []int{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Search(c, tc.term)
			assert.Equal(t, tc.want, ids(got))

			term := strings.ToLower(strings.TrimSpace(tc.term))
			for _, w := range got {
				if term == "" {
					continue
				}
				hit := strings.Contains(strings.ToLower(w.Title), term) ||
					slices.ContainsFunc(w.Tags, func(tag string) bool {
						return strings.Contains(strings.ToLower(tag), term)
					})
				assert.True(t, hit, "wallpaper %d does not match %q", w.ID, term)
			}
		})
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	c := mixed()
	before := ids(c)

	for _, key := range SortKeys() {
		_ = Sort(c, key)
		assert.Equal(t, before, ids(c), key.String())
	}
}

func TestSortTrendingIsStable(t *testing.T) {
	got := Sort(mixed(), SortTrending)
	assert.Equal(t, []int{2, 5, 1, 3, 4, 6}, ids(got))
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Views, got[i].Views)
	}
}

func TestSortMostDownloadsIsStable(t *testing.T) {
	got := Sort(mixed(), SortMostDownloads)
	assert.Equal(t, []int{3, 5, 1, 2, 4, 6}, ids(got))
}

func TestSortNewest(t *testing.T) {
	got := Sort(mixed(), SortNewest)
	// 3 and 4 share a date; unparsable dates go last in input order.
	assert.Equal(t, []int{3, 4, 5, 1, 2, 6}, ids(got))
}

func TestSortRandomIsPermutation(t *testing.T) {
	c := mixed()
	got := Sort(c, SortRandom)
	assert.ElementsMatch(t, ids(c), ids(got))
}

func TestSorterSeededRandomIsReproducible(t *testing.T) {
	a := NewSorter(rand.NewPCG(1, 2)).Sort(mixed(), SortRandom)
	b := NewSorter(rand.NewPCG(1, 2)).Sort(mixed(), SortRandom)
	assert.Equal(t, ids(a), ids(b))
}

func TestSortEmpty(t *testing.T) {
	got := Sort(nil, SortTrending)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		raw  string
		want SortKey
	}{
		{"", SortTrending},
		{"Trending", SortTrending},
		{"Most Downloads", SortMostDownloads},
		{"most_downloads", SortMostDownloads},
		{"MostDownloads", SortMostDownloads},
		{"newest", SortNewest},
		{" RANDOM ", SortRandom},
	}
	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := ParseSortKey(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := ParseSortKey("oldest")
	assert.ErrorIs(t, err, ErrUnknownSortKey)
}

func TestSortKeyLabels(t *testing.T) {
	assert.Equal(t, "Most Downloads", SortMostDownloads.Label())
	assert.Equal(t, "Newest", SortNewest.Label())
	assert.False(t, SortKey(42).Valid())
	assert.Equal(t, "SortKey(42)", SortKey(42).String())
}
