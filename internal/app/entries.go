package app

import (
	"github.com/eddi888/s3c/internal/model"
)

// modeSelectNameS3 and modeSelectNameLocal name the two synthetic entries a
// panel at ModeSelect shows; spec.md §4.7 names the two root transitions
// ("ModeSelect → ProfileList" and "ModeSelect → LocalRoots") but leaves how
// the choice is presented unspecified. Two fixed container entries, sorted
// and filtered like any other listing, keep ModeSelect a normal Panel Model
// screen instead of a special case in the renderer.
const (
	modeSelectNameS3    = "S3 Profiles"
	modeSelectNameLocal = "Local Filesystem"
)

// modeSelectEntries is the fixed, in-memory listing for ModeSelect. It
// never changes, so the reducer installs it directly rather than routing
// through a tea.Cmd.
func modeSelectEntries() []model.Entry {
	return []model.Entry{
		{Name: modeSelectNameS3, Kind: model.KindDirectory, Size: -1},
		{Name: modeSelectNameLocal, Kind: model.KindDirectory, Size: -1},
	}
}

// bucketListEntries projects profile.Buckets (already in Config, no I/O
// needed) into a listing, with the Up entry back to ProfileList.
func bucketListEntries(profile model.Profile) []model.Entry {
	entries := make([]model.Entry, 0, len(profile.Buckets)+1)
	entries = append(entries, model.Entry{Name: "..", Kind: model.KindUp, Size: -1})
	for _, b := range profile.Buckets {
		entries = append(entries, model.Entry{Name: b.Name, Kind: model.KindBucket, Size: -1})
	}
	return entries
}
