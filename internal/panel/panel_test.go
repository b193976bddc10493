package panel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eddi888/s3c/internal/model"
)

func TestPushBumpsGenerationAndResetsListing(t *testing.T) {
	p := New(Left)
	g0 := p.Generation()

	g1 := p.Push(Frame{Mode: ProfileList, Profile: "work"})
	assert.Greater(t, g1, g0)
	assert.Equal(t, ProfileList, p.Mode())
	assert.Empty(t, p.Listing())
}

func TestStaleListingResultIsDiscarded(t *testing.T) {
	p := New(Left)
	gen := p.Push(Frame{Mode: BucketList})

	applied := p.SetListing([]model.Entry{{Name: "a", Kind: model.KindFile}}, gen)
	require.True(t, applied)
	assert.Len(t, p.Listing(), 1)

	// Navigate away; a late result tagged with the old generation must not
	// overwrite the new frame's (empty) listing.
	p.Push(Frame{Mode: S3Browser, Prefix: ""})
	stale := p.SetListing([]model.Entry{{Name: "stale", Kind: model.KindFile}}, gen)
	assert.False(t, stale)
	assert.Empty(t, p.Listing())
}

func TestPopAtRootIsNoop(t *testing.T) {
	p := New(Left)
	assert.Equal(t, ModeSelect, p.Mode())
	p.Pop()
	assert.Equal(t, ModeSelect, p.Mode())
}

func TestPopReturnsToParentMode(t *testing.T) {
	p := New(Left)
	p.Push(Frame{Mode: ProfileList})
	p.Push(Frame{Mode: BucketList, Profile: "work"})
	p.Pop()
	assert.Equal(t, ProfileList, p.Mode())
	p.Pop()
	assert.Equal(t, ModeSelect, p.Mode())
}

func TestCursorStaysInBoundsOfFilteredListing(t *testing.T) {
	p := New(Left)
	p.Push(Frame{Mode: S3Browser})
	p.SetListing([]model.Entry{
		{Name: "a", Kind: model.KindFile},
		{Name: "b", Kind: model.KindFile},
		{Name: "c", Kind: model.KindFile},
	}, p.Generation())

	p.MoveCursor(-5)
	assert.Equal(t, 0, p.Cursor)
	p.MoveCursor(100)
	assert.Equal(t, 2, p.Cursor)

	p.SetFilter("nonexistent")
	assert.Equal(t, 0, p.Cursor)
	assert.Empty(t, p.Listing())
}

func TestFilterIsCaseInsensitiveAndIdempotent(t *testing.T) {
	p := New(Left)
	p.Push(Frame{Mode: S3Browser})
	p.SetListing([]model.Entry{
		{Name: "Alpha", Kind: model.KindFile},
		{Name: "beta", Kind: model.KindFile},
	}, p.Generation())

	p.SetFilter("AL")
	first := p.Listing()
	require.Len(t, first, 1)
	assert.Equal(t, "Alpha", first[0].Name)

	p.SetFilter("AL")
	second := p.Listing()
	assert.Equal(t, first, second, "applying the same filter twice must yield the same listing")
}

func TestFilterKeepsUpEntry(t *testing.T) {
	p := New(Left)
	p.Push(Frame{Mode: S3Browser})
	p.SetListing([]model.Entry{
		{Name: "..", Kind: model.KindUp, Size: -1},
		{Name: "logs", Kind: model.KindDirectory, Size: -1},
	}, p.Generation())

	p.SetFilter("zzz-no-match")
	listing := p.Listing()
	require.Len(t, listing, 1)
	assert.Equal(t, model.KindUp, listing[0].Kind)
}

func TestS3DirectoryNavigationOrdering(t *testing.T) {
	// Scenario 3 from spec.md §8.
	p := New(Left)
	p.Push(Frame{Mode: S3Browser, Prefix: ""})
	p.SetListing([]model.Entry{
		{Name: "..", Kind: model.KindUp, Size: -1},
		{Name: "a", Kind: model.KindDirectory, Size: -1},
		{Name: "c.txt", Kind: model.KindFile, Size: 5},
	}, p.Generation())

	listing := p.Listing()
	require.Len(t, listing, 3)
	assert.Equal(t, "..", listing[0].Name)
	assert.Equal(t, "a", listing[1].Name)
	assert.Equal(t, "c.txt", listing[2].Name)
}

func TestSortByNameAscIsCaseInsensitiveTotalOrderAndReversible(t *testing.T) {
	p := New(Left)
	p.Push(Frame{Mode: LocalBrowser})
	p.SetListing([]model.Entry{
		{Name: "Banana", Kind: model.KindFile},
		{Name: "apple", Kind: model.KindFile},
		{Name: "Cherry", Kind: model.KindFile},
	}, p.Generation())

	p.SetSort(model.SortKey{Field: model.SortByName, Dir: model.Asc})
	asc := namesOf(p.Listing())
	assert.Equal(t, []string{"apple", "Banana", "Cherry"}, asc)

	p.SetSort(model.SortKey{Field: model.SortByName, Dir: model.Desc})
	desc := namesOf(p.Listing())
	assert.Equal(t, []string{"Cherry", "Banana", "apple"}, desc, "reversing direction must reverse the listing exactly")
}

func TestSortBySizeAndDate(t *testing.T) {
	now := time.Now()
	p := New(Left)
	p.Push(Frame{Mode: LocalBrowser})
	p.SetListing([]model.Entry{
		{Name: "big", Kind: model.KindFile, Size: 300, MTime: now.Add(-time.Hour)},
		{Name: "small", Kind: model.KindFile, Size: 10, MTime: now},
	}, p.Generation())

	p.SetSort(model.SortKey{Field: model.SortBySize, Dir: model.Asc})
	assert.Equal(t, []string{"small", "big"}, namesOf(p.Listing()))

	p.SetSort(model.SortKey{Field: model.SortByDate, Dir: model.Asc})
	assert.Equal(t, []string{"big", "small"}, namesOf(p.Listing()))
}

func namesOf(entries []model.Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}
