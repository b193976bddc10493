package panel

import (
	"sort"
	"strings"

	"github.com/eddi888/s3c/internal/model"
)

// sortEntries orders entries by key, pinning any Up entry first regardless
// of key (navigating up is not subject to the active sort). Name comparison
// is case-insensitive pure code-unit order — no locale-aware collation —
// per spec.md §8: "ignoring case and locale (pure code-unit order)."
// Names equal ignoring case fall back to their exact code units, so for
// distinct names reversing Dir reverses the listing exactly.
func sortEntries(entries []model.Entry, key model.SortKey) []model.Entry {
	out := make([]model.Entry, len(entries))
	copy(out, entries)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Kind == model.KindUp || b.Kind == model.KindUp {
			return a.Kind == model.KindUp
		}

		less := lessFor(key.Field, a, b)
		if key.Dir == model.Desc {
			return lessFor(key.Field, b, a)
		}
		return less
	})

	return out
}

func lessFor(field model.SortField, a, b model.Entry) bool {
	switch field {
	case model.SortBySize:
		if a.Size != b.Size {
			return a.Size < b.Size
		}
	case model.SortByDate:
		if !a.MTime.Equal(b.MTime) {
			return a.MTime.Before(b.MTime)
		}
	}
	la, lb := strings.ToLower(a.Name), strings.ToLower(b.Name)
	if la != lb {
		return la < lb
	}
	return a.Name < b.Name
}
