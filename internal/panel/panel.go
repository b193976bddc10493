package panel

import (
	"strings"

	"github.com/eddi888/s3c/internal/model"
)

// State is one panel's full navigational state: its mode stack, current
// listing, cursor/scroll position, and filter/sort. Both panels in the
// application are independent State values; the reducer (internal/app)
// decides which one is active.
type State struct {
	Side Side

	stack []Frame

	rawListing []model.Entry
	Cursor     int
	Scroll     int
	Filter     string
	Sort       model.SortKey

	generation int
	Loading    bool

	// Banner is a transient status message set by a failed or completed
	// operation on this panel, cleared per spec.md §7's "cleared on next
	// successful action or after 5s" by the caller (internal/app owns the
	// timer).
	Banner string
}

// New returns a panel rooted at ModeSelect, spec.md §4.7's mode-stack root.
func New(side Side) *State {
	return &State{
		Side:  side,
		stack: []Frame{{Mode: ModeSelect}},
		Sort:  model.DefaultSortKey,
	}
}

// Mode reports the top of the mode stack.
func (s *State) Mode() Mode { return s.stack[len(s.stack)-1].Mode }

// Frame reports the full top-of-stack frame (mode plus its context).
func (s *State) Frame() Frame { return s.stack[len(s.stack)-1] }

// AtRoot reports whether the panel's mode stack holds only its root frame
// (ModeSelect), i.e. a Back press here has nowhere left to ascend to.
func (s *State) AtRoot() bool { return len(s.stack) <= 1 }

// Generation reports the panel's current generation counter, per spec.md
// §5/§9: incremented on every mode transition so in-flight requests tagged
// with an older generation are recognized as stale.
func (s *State) Generation() int { return s.generation }

// IsStale reports whether a result tagged with generation g predates the
// panel's current generation, i.e. the panel has since navigated away and
// the result must be discarded without updating State.
func (s *State) IsStale(g int) bool { return g != s.generation }

// Push descends into a new mode, resetting listing/cursor/scroll/filter and
// bumping the generation counter (spec.md §4.7 transitions, §9 generation
// counters).
func (s *State) Push(f Frame) int {
	s.stack = append(s.stack, f)
	s.resetForNewFrame()
	return s.generation
}

// Pop ascends one level, per spec.md §4.7's "On Up entry: pops one level;
// at mode root the pop goes to ModeSelect." Popping while already at
// ModeSelect (the stack root) is a no-op here; the caller (internal/app)
// decides what a Back press at the true root means for the application
// (e.g. quit confirmation).
func (s *State) Pop() int {
	if len(s.stack) > 1 {
		s.stack = s.stack[:len(s.stack)-1]
		s.resetForNewFrame()
	}
	return s.generation
}

// PopToRoot truncates the stack back to ModeSelect directly, resets the
// listing state and returns the new generation.
func (s *State) PopToRoot() int {
	s.stack = s.stack[:1]
	s.resetForNewFrame()
	return s.generation
}

func (s *State) resetForNewFrame() {
	s.generation++
	s.rawListing = nil
	s.Cursor = 0
	s.Scroll = 0
	s.Filter = ""
	s.Loading = true
}

// Bump increments the generation without changing the mode stack, used
// when re-issuing a listing request against the same frame (e.g. a manual
// refresh after a transfer completes).
func (s *State) Bump() int {
	s.generation++
	return s.generation
}

// SetListing installs a freshly loaded listing if forGeneration matches the
// panel's current generation; a stale result (forGeneration < generation)
// is silently discarded, per spec.md §5/§8. Reports whether it applied.
func (s *State) SetListing(entries []model.Entry, forGeneration int) bool {
	if s.IsStale(forGeneration) {
		return false
	}
	s.rawListing = entries
	s.Loading = false
	if s.Cursor >= len(s.Listing()) {
		s.Cursor = max(0, len(s.Listing())-1)
	}
	return true
}

// Listing returns the panel's current listing with Filter applied
// case-insensitively and Sort applied, per spec.md §4.7/§8. A synthetic Up
// entry, if present, always sorts first regardless of Sort — navigating up
// is not subject to the active sort order.
func (s *State) Listing() []model.Entry {
	filtered := applyFilter(s.rawListing, s.Filter)
	return sortEntries(filtered, s.Sort)
}

func applyFilter(entries []model.Entry, filter string) []model.Entry {
	if filter == "" {
		return entries
	}
	needle := strings.ToLower(filter)
	out := make([]model.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Kind == model.KindUp || strings.Contains(strings.ToLower(e.Name), needle) {
			out = append(out, e)
		}
	}
	return out
}

// SetFilter replaces the panel's filter substring. Filtering is idempotent
// (spec.md §8): calling SetFilter with the same value twice yields the same
// Listing(), since applyFilter is a pure function of rawListing and Filter.
func (s *State) SetFilter(filter string) {
	s.Filter = filter
	if s.Cursor >= len(s.Listing()) {
		s.Cursor = max(0, len(s.Listing())-1)
	}
}

// SetSort replaces the panel's sort key.
func (s *State) SetSort(key model.SortKey) {
	s.Sort = key
}

// MoveCursor shifts Cursor by delta, clamped to the current Listing's
// bounds, per spec.md §8's "either the listing is empty or 0 ≤ cursor <
// len(filtered_listing)".
func (s *State) MoveCursor(delta int) {
	n := len(s.Listing())
	if n == 0 {
		s.Cursor = 0
		return
	}
	c := s.Cursor + delta
	if c < 0 {
		c = 0
	}
	if c >= n {
		c = n - 1
	}
	s.Cursor = c
}

// Selected returns the entry at Cursor, or the zero Entry and false if the
// listing is empty.
func (s *State) Selected() (model.Entry, bool) {
	listing := s.Listing()
	if s.Cursor < 0 || s.Cursor >= len(listing) {
		return model.Entry{}, false
	}
	return listing[s.Cursor], true
}
