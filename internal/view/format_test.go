package view

import (
	"testing"

	"github.com/eddi888/s3c/internal/model"
)

func TestHumanSize(t *testing.T) {
	cases := map[int64]string{
		-1:      "",
		0:       "0 B",
		512:     "512 B",
		1536:    "1.5 KB",
		5 << 20: "5.0 MB",
	}
	for size, want := range cases {
		if got := humanSize(size); got != want {
			t.Errorf("humanSize(%d) = %q, want %q", size, got, want)
		}
	}
}

func TestTruncateName(t *testing.T) {
	if got := truncateName("short.txt", 20); got != "short.txt" {
		t.Errorf("truncateName short = %q", got)
	}
	if got := truncateName("a-very-long-filename.txt", 10); got != "a-very-lo…" {
		t.Errorf("truncateName long = %q", got)
	}
	if got := truncateName("x", 1); got != "x" {
		t.Errorf("truncateName width<=1 = %q", got)
	}
}

func TestEntryGlyph(t *testing.T) {
	cases := []struct {
		entry model.Entry
		want  string
	}{
		{model.Entry{Kind: model.KindUp, Name: ".."}, ".."},
		{model.Entry{Kind: model.KindDirectory, Name: "photos"}, "/photos"},
		{model.Entry{Kind: model.KindBucket, Name: "my-bucket"}, "/my-bucket"},
		{model.Entry{Kind: model.KindFile, Name: "a.txt"}, "a.txt"},
	}
	for _, c := range cases {
		if got := entryGlyph(c.entry); got != c.want {
			t.Errorf("entryGlyph(%+v) = %q, want %q", c.entry, got, c.want)
		}
	}
}
