package app

import (
	"testing"

	"github.com/eddi888/s3c/internal/model"
)

func TestModeSelectEntries(t *testing.T) {
	entries := modeSelectEntries()
	if len(entries) != 2 {
		t.Fatalf("len = %d, want 2", len(entries))
	}
	if entries[0].Name != modeSelectNameS3 || entries[1].Name != modeSelectNameLocal {
		t.Errorf("unexpected names: %+v", entries)
	}
	for _, e := range entries {
		if !e.IsContainer() {
			t.Errorf("entry %q should be a container", e.Name)
		}
	}
}

func TestBucketListEntries(t *testing.T) {
	profile := model.Profile{
		Name: "prod",
		Buckets: []model.Bucket{
			{Name: "logs"},
			{Name: "assets"},
		},
	}
	entries := bucketListEntries(profile)
	if len(entries) != 3 {
		t.Fatalf("len = %d, want 3", len(entries))
	}
	if entries[0].Kind != model.KindUp {
		t.Errorf("entries[0] kind = %v, want KindUp", entries[0].Kind)
	}
	if entries[1].Name != "logs" || entries[1].Kind != model.KindBucket {
		t.Errorf("entries[1] = %+v", entries[1])
	}
	if entries[2].Name != "assets" {
		t.Errorf("entries[2] = %+v", entries[2])
	}
}

func TestBucketListEntriesEmpty(t *testing.T) {
	entries := bucketListEntries(model.Profile{Name: "empty"})
	if len(entries) != 1 {
		t.Fatalf("len = %d, want 1 (just the Up entry)", len(entries))
	}
}
