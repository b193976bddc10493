package preview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapLinesExpandsTabsAndWrapsAtWidth(t *testing.T) {
	tests := map[string]struct {
		data      []byte
		wrapWidth int
		want      []string
	}{
		"tab expands to four spaces": {
			[]byte("a\tb"), 80, []string{"a    b"},
		},
		"line wraps at width": {
			[]byte("abcdef"), 4, []string{"abcd", "ef"},
		},
		"newline starts a new logical line": {
			[]byte("ab\ncd"), 80, []string{"ab", "cd"},
		},
		"zero width disables wrapping": {
			[]byte("abcdef"), 0, []string{"abcdef"},
		},
		"invalid UTF-8 is replaced, not dropped": {
			[]byte{'a', 0xff, 'b'}, 80, []string{"a�b"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, WrapLines(tt.data, tt.wrapWidth))
		})
	}
}
