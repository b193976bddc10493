package preview

import "strings"

// tabWidth is spec.md §4.5's "TAB expands to four spaces."
const tabWidth = 4

// WrapLines turns raw bytes into visual lines: invalid UTF-8 is replaced
// permissively (Go's native rune-ranging over a string already does this,
// one byte at a time, which is exactly the "permissive decode" spec.md
// §4.5 asks for — no golang.org/x/text encoding package is warranted), tabs
// expand to four spaces, and each logical (newline-delimited) line is
// wrapped at wrapWidth runes. cursor_line and all navigation operate on the
// returned slice, so that pressing End on a one-line 10 MB file advances to
// its last wrapped row rather than its one logical line.
func WrapLines(data []byte, wrapWidth int) []string {
	text := string(data)
	logical := strings.Split(text, "\n")

	var visual []string
	for _, line := range logical {
		visual = append(visual, wrapLine(expandTabs(line), wrapWidth)...)
	}
	return visual
}

func expandTabs(line string) string {
	if !strings.ContainsRune(line, '\t') {
		return line
	}
	var b strings.Builder
	for _, r := range line {
		if r == '\t' {
			b.WriteString(strings.Repeat(" ", tabWidth))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func wrapLine(line string, wrapWidth int) []string {
	if wrapWidth <= 0 {
		return []string{line}
	}
	runes := []rune(line)
	if len(runes) == 0 {
		return []string{""}
	}
	rows := make([]string, 0, len(runes)/wrapWidth+1)
	for start := 0; start < len(runes); start += wrapWidth {
		end := min(start+wrapWidth, len(runes))
		rows = append(rows, string(runes[start:end]))
	}
	return rows
}
