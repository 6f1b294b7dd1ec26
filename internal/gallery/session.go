package gallery

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/wallgrid/wallpaper-gallery/internal/wallpaper"
)

// Session is the gallery view model for one viewer: the loaded collection,
// its load state and the current ViewState. Derived views are memoised on
// the collection version and the view state. Safe for concurrent use.
type Session struct {
	mu      sync.Mutex
	all     []wallpaper.Wallpaper
	version uint64
	state   ViewState
	sorter  *Sorter

	cached    *View
	cachedKey memoKey

	collection *Loader[[]wallpaper.Wallpaper]
}

type memoKey struct {
	version uint64
	state   ViewState
}

// NewSession returns a session in the default view state with no collection
// loaded. A nil sorter shuffles nondeterministically.
func NewSession(sorter *Sorter) *Session {
	if sorter == nil {
		sorter = &Sorter{}
	}
	s := &Session{
		state:  DefaultViewState(),
		sorter: sorter,
	}
	s.collection = NewLoader(func(st LoadState[[]wallpaper.Wallpaper]) {
		if st.Status == StatusSuccess {
			s.replaceCollection(st.Data)
		}
	})
	return s
}

// Load fetches the collection and installs it when this is still the most
// recent load. Records are validated before they are accepted.
func (s *Session) Load(ctx context.Context, fetch func(context.Context) ([]wallpaper.Wallpaper, error)) LoadState[[]wallpaper.Wallpaper] {
	state, _ := s.collection.Load(ctx, func(ctx context.Context) ([]wallpaper.Wallpaper, error) {
		items, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		if err := wallpaper.Validate(items); err != nil {
			return nil, err
		}
		if items == nil {
			items = []wallpaper.Wallpaper{}
		}
		return items, nil
	})
	return state
}

// LoadState reports the state of the collection load.
func (s *Session) LoadState() LoadState[[]wallpaper.Wallpaper] {
	return s.collection.State()
}

// SetCollection installs items directly, bypassing the loader state.
func (s *Session) SetCollection(items []wallpaper.Wallpaper) error {
	if err := wallpaper.Validate(items); err != nil {
		return err
	}
	s.replaceCollection(items)
	return nil
}

func (s *Session) replaceCollection(items []wallpaper.Wallpaper) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.all = slices.Clone(items)
	s.version++
}

// State returns the current view controls.
func (s *Session) State() ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) SetCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Category = category
}

func (s *Session) SetSearch(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Search = term
}

// ClearSearch resets the search term.
func (s *Session) ClearSearch() { s.SetSearch("") }

func (s *Session) SetSort(key SortKey) error {
	if !key.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownSortKey, key)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Sort = key
	return nil
}

// Categories lists the category choices for the loaded collection.
func (s *Session) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Categories(s.all)
}

// Displayed returns the derived view. Without a change to the collection or
// the view controls the previously derived view is returned as is, which
// also keeps a Random ordering stable until something changes.
func (s *Session) Displayed() (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := memoKey{version: s.version, state: s.state}
	if s.cached != nil && s.cachedKey == key {
		return *s.cached, nil
	}

	view, err := Derive(s.all, s.state, s.sorter)
	if err != nil {
		return View{}, err
	}
	s.cached = &view
	s.cachedKey = key
	return view, nil
}

// Detail resolves a wallpaper from the loaded collection by its path id.
func (s *Session) Detail(rawID string) (wallpaper.Wallpaper, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return wallpaper.Lookup(s.all, rawID)
}
