package model

import "testing"

func TestEntryIsContainer(t *testing.T) {
	containers := []EntryKind{KindUp, KindDirectory, KindBucket, KindProfile}
	for _, k := range containers {
		if !(Entry{Kind: k}).IsContainer() {
			t.Errorf("%v.IsContainer() = false, want true", k)
		}
	}
	if (Entry{Kind: KindFile}).IsContainer() {
		t.Error("KindFile.IsContainer() = true, want false")
	}
}

func TestEntryKindString(t *testing.T) {
	if KindBucket.String() != "bucket" {
		t.Errorf("KindBucket.String() = %q", KindBucket.String())
	}
	if EntryKind(99).String() != "unknown" {
		t.Errorf("unknown kind did not stringify to %q", "unknown")
	}
}
