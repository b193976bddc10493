package app

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/eddi888/s3c/internal/panel"
)

// DialogKind selects which modal is open, driving both F-key footer labels
// (spec.md §6) and how a submitted dialog is interpreted.
type DialogKind int

const (
	DialogNone DialogKind = iota
	DialogHelp
	DialogSort
	DialogFilter
	DialogRename
	DialogMkdir
	DialogDeleteConfirm
	DialogAdvanced
	DialogQuitConfirm
	DialogBucketEdit
	DialogProfileEdit
)

// modal is the currently open dialog, if any. A text-entry dialog
// (Filter/Rename/Mkdir) carries a textinput.Model; confirm dialogs
// (Delete/Quit) and the Help dialog carry only a message.
type modal struct {
	kind    DialogKind
	side    panel.Side
	input   textinput.Model
	prompt  string
	message string
}

// newTextDialog builds a modal with a focused single-line text input,
// pre-filled with initial (e.g. the current filter, or the entry being
// renamed).
func newTextDialog(kind DialogKind, side panel.Side, prompt, initial string) *modal {
	ti := textinput.New()
	ti.SetValue(initial)
	ti.Focus()
	ti.CursorEnd()
	return &modal{kind: kind, side: side, input: ti, prompt: prompt}
}

// newMessageDialog builds a modal with no text input (Help, confirmations).
func newMessageDialog(kind DialogKind, side panel.Side, message string) *modal {
	return &modal{kind: kind, side: side, message: message}
}
