package gallery

import (
	"fmt"

	"github.com/wallgrid/wallpaper-gallery/internal/wallpaper"
)

// EmptyReason explains why a derived view has no items.
type EmptyReason string

const (
	EmptyNone     EmptyReason = "none"
	EmptyNoData   EmptyReason = "no-data"
	EmptyFiltered EmptyReason = "filtered"
)

// View is the displayed sequence derived from a collection and a ViewState.
type View struct {
	Items []wallpaper.Wallpaper `json:"items"`
	Total int                   `json:"total"`
	Empty EmptyReason           `json:"empty"`
	State ViewState             `json:"-"`
}

// Derive runs category filter, search filter and sort in that order.
// No stage mutates all or an earlier stage's output.
func Derive(all []wallpaper.Wallpaper, state ViewState, sorter *Sorter) (View, error) {
	if !state.Sort.Valid() {
		return View{}, fmt.Errorf("%w: %s", ErrUnknownSortKey, state.Sort)
	}
	if sorter == nil {
		sorter = &Sorter{}
	}

	items := FilterCategory(all, state.Category)
	items = Search(items, state.Search)
	items = sorter.Sort(items, state.Sort)

	view := View{
		Items: items,
		Total: len(all),
		Empty: EmptyNone,
		State: state,
	}
	switch {
	case len(all) == 0:
		view.Empty = EmptyNoData
	case len(items) == 0:
		view.Empty = EmptyFiltered
	}
	return view, nil
}

// Message is the text shown in place of the grid when the view is empty.
func (v View) Message() string {
	switch v.Empty {
	case EmptyNoData:
		return "No wallpapers available yet."
	case EmptyFiltered:
		if v.State.Search != "" {
			msg := fmt.Sprintf("No wallpapers found matching %q", v.State.Search)
			if v.State.Category != AllCategories {
				msg += " in " + v.State.Category
			}
			return msg + "."
		}
		return fmt.Sprintf("No wallpapers found in %s.", v.State.Category)
	}
	return ""
}
