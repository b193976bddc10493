// Package input is the Input Translator (spec.md §4.10): a deterministic,
// pure function from (KeyEvent, ActivePanelMode, ModalOpen?) to an Action
// the Message Loop (internal/app) interprets. It depends only on
// internal/panel for mode context, not on internal/app, so the dependency
// runs one way: internal/app calls into internal/input, never the reverse.
package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/eddi888/s3c/internal/panel"
)

// Kind is the translated intent of a key press.
type Kind int

const (
	None Kind = iota
	Enter
	Back
	Tab
	CancelJob
	Quit

	CursorUp
	CursorDown
	PageUp
	PageDown

	PreviewHome
	PreviewEnd

	OpenHelp
	OpenSort
	OpenView
	OpenFilter
	OpenRename
	OpenMkdir
	OpenDeleteConfirm
	OpenAdvanced
	Copy

	// DialogSubmit/DialogCancel/DialogPassThrough only fire when a
	// modal is open; everything else is suppressed while one is, per
	// spec.md §4.10's "Letter shortcuts ... apply only when no modal is
	// open and no input field has focus."
	DialogSubmit
	DialogCancel
	// DialogPassThrough means: the modal's own text widget should consume
	// this raw key (character entry, left/right, etc.) — the translator
	// only lifts out the handful of keys a modal intercepts globally.
	DialogPassThrough
)

// Action is the Message c10 produces; internal/app's reducer switches on
// Kind.
type Action struct {
	Kind Kind
	Key  tea.KeyMsg // populated for DialogPassThrough, so the caller can forward it verbatim
}

// Translate maps a decoded key event to an Action, given the active
// panel's mode and whether a modal is currently open. It is a pure
// function: same inputs, same output, no side effects.
func Translate(key tea.KeyMsg, mode panel.Mode, modalOpen bool) Action {
	if modalOpen {
		return translateModal(key)
	}
	return translateNormal(key, mode)
}

func translateModal(key tea.KeyMsg) Action {
	switch key.Type {
	case tea.KeyEnter:
		return Action{Kind: DialogSubmit}
	case tea.KeyEsc:
		return Action{Kind: DialogCancel}
	default:
		return Action{Kind: DialogPassThrough, Key: key}
	}
}

func translateNormal(key tea.KeyMsg, mode panel.Mode) Action {
	switch key.Type {
	case tea.KeyEnter:
		return Action{Kind: Enter}
	case tea.KeyEsc:
		return Action{Kind: Back}
	case tea.KeyTab:
		return Action{Kind: Tab}
	case tea.KeyUp:
		return Action{Kind: CursorUp}
	case tea.KeyDown:
		return Action{Kind: CursorDown}
	case tea.KeyPgUp:
		return Action{Kind: PageUp}
	case tea.KeyPgDown:
		return Action{Kind: PageDown}
	case tea.KeyHome:
		if mode == panel.Preview {
			return Action{Kind: PreviewHome}
		}
	case tea.KeyEnd:
		if mode == panel.Preview {
			return Action{Kind: PreviewEnd}
		}
	case tea.KeyF1:
		return Action{Kind: OpenHelp}
	case tea.KeyF2:
		return Action{Kind: OpenSort}
	case tea.KeyF3:
		return Action{Kind: OpenView}
	case tea.KeyF4:
		return Action{Kind: OpenFilter}
	case tea.KeyF5:
		return Action{Kind: Copy}
	case tea.KeyF6:
		return Action{Kind: OpenRename}
	case tea.KeyF7:
		return Action{Kind: OpenMkdir}
	case tea.KeyF8:
		return Action{Kind: OpenDeleteConfirm}
	case tea.KeyF9:
		return Action{Kind: OpenAdvanced}
	case tea.KeyF10:
		return Action{Kind: Quit}
	case tea.KeyRunes:
		switch string(key.Runes) {
		case "q":
			return Action{Kind: Quit}
		case "?":
			return Action{Kind: OpenHelp}
		case "x":
			return Action{Kind: CancelJob}
		case "..":
			return Action{Kind: Back}
		}
	}
	return Action{Kind: None}
}
