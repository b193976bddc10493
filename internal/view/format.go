package view

import (
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/eddi888/s3c/internal/model"
)

// humanSize renders size the way spec.md §4.9 asks: "B/KB/MB/GB, base
// 1024, one decimal ≥ 10" — exactly go-humanize's IBytes, minus its "i"
// suffix (IBytes gives "1.5 MiB"; s3c wants "1.5 MB").
func humanSize(size int64) string {
	if size < 0 {
		return ""
	}
	s := humanize.IBytes(uint64(size))
	return strings.NewReplacer("KiB", "KB", "MiB", "MB", "GiB", "GB", "TiB", "TB").Replace(s)
}

// truncateName ellipsizes name to fit width, spec.md §4.9's "Name column
// truncates with an ellipsis."
func truncateName(name string, width int) string {
	runes := []rune(name)
	if width <= 1 || len(runes) <= width {
		return name
	}
	return string(runes[:width-1]) + "…"
}

// entryGlyph prefixes an entry's name with a short kind marker, since s3c
// has no icon font to lean on in a plain terminal.
func entryGlyph(e model.Entry) string {
	switch e.Kind {
	case model.KindUp:
		return ".."
	case model.KindDirectory, model.KindBucket, model.KindProfile:
		return "/" + e.Name
	default:
		return e.Name
	}
}
