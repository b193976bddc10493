package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eddi888/s3c/internal/panel"
)

func TestTranslateNormalModeKeys(t *testing.T) {
	cases := []struct {
		name string
		key  tea.KeyMsg
		mode panel.Mode
		want Kind
	}{
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, panel.S3Browser, Enter},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, panel.S3Browser, Back},
		{"dotdot", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("..")}, panel.S3Browser, Back},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, panel.S3Browser, Tab},
		{"f3 view", tea.KeyMsg{Type: tea.KeyF3}, panel.S3Browser, OpenView},
		{"f4 filter", tea.KeyMsg{Type: tea.KeyF4}, panel.S3Browser, OpenFilter},
		{"f5 copy", tea.KeyMsg{Type: tea.KeyF5}, panel.S3Browser, Copy},
		{"f10 quit", tea.KeyMsg{Type: tea.KeyF10}, panel.S3Browser, Quit},
		{"q quits", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, panel.S3Browser, Quit},
		{"x cancels job", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, panel.S3Browser, CancelJob},
		{"home outside preview is none", tea.KeyMsg{Type: tea.KeyHome}, panel.S3Browser, None},
		{"home inside preview", tea.KeyMsg{Type: tea.KeyHome}, panel.Preview, PreviewHome},
		{"end inside preview", tea.KeyMsg{Type: tea.KeyEnd}, panel.Preview, PreviewEnd},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Translate(c.key, c.mode, false)
			if got.Kind != c.want {
				t.Errorf("Translate(%+v, %v, false).Kind = %v, want %v", c.key, c.mode, got.Kind, c.want)
			}
		})
	}
}

func TestTranslateModalInterceptsOnlyEnterAndEsc(t *testing.T) {
	if got := Translate(tea.KeyMsg{Type: tea.KeyEnter}, panel.S3Browser, true); got.Kind != DialogSubmit {
		t.Errorf("modal Enter = %v, want DialogSubmit", got.Kind)
	}
	if got := Translate(tea.KeyMsg{Type: tea.KeyEsc}, panel.S3Browser, true); got.Kind != DialogCancel {
		t.Errorf("modal Esc = %v, want DialogCancel", got.Kind)
	}

	key := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}
	got := Translate(key, panel.S3Browser, true)
	if got.Kind != DialogPassThrough {
		t.Errorf("modal 'q' = %v, want DialogPassThrough", got.Kind)
	}
	if string(got.Key.Runes) != "q" {
		t.Errorf("DialogPassThrough did not carry the raw key: %+v", got.Key)
	}
}

func TestTranslateUnknownKeyIsNone(t *testing.T) {
	key := tea.KeyMsg{Type: tea.KeyCtrlA}
	if got := Translate(key, panel.S3Browser, false); got.Kind != None {
		t.Errorf("Translate(CtrlA) = %v, want None", got.Kind)
	}
}
