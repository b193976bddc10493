package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eddi888/s3c/internal/model"
	"github.com/eddi888/s3c/internal/panel"
)

// openHelp opens the F1 Help modal, available in every mode (spec.md §6's
// key-binding table has no "—" in the F1 row). Its body is the static
// key-binding reference plus the ring's most recent log lines, giving the
// same modal double duty as a diagnostics view.
func (m *Model) openHelp() (tea.Model, tea.Cmd) {
	m.dlg = newMessageDialog(DialogHelp, m.active, m.helpMessage())
	return m, nil
}

func (m *Model) helpMessage() string {
	if m.logRing == nil {
		return helpText
	}
	lines := m.logRing.Lines()
	if len(lines) == 0 {
		return helpText
	}
	if len(lines) > 10 {
		lines = lines[len(lines)-10:]
	}
	return helpText + "\n\nRecent log activity:\n" + strings.Join(lines, "")
}

const helpText = `Tab switches panels, Enter descends, Esc/.. ascends.
F1 Help  F2 Sort  F3 Edit/View  F4 Filter
F5 Copy  F6 Rename  F7 Mkdir/New Bucket  F8 Delete
F9 Advanced/Profile  F10 Quit  x cancels a foregrounded transfer.`

// openSort opens F2 Sort, available on every listing mode.
func (m *Model) openSort() (tea.Model, tea.Cmd) {
	if !isListingMode(m.activePanel().Mode()) {
		return m, nil
	}
	m.dlg = newMessageDialog(DialogSort, m.active, "n: Name  s: Size  d: Date  r: reverse direction")
	return m, nil
}

// openFilter opens F4 Filter, pre-filled with the panel's current filter.
func (m *Model) openFilter() (tea.Model, tea.Cmd) {
	p := m.activePanel()
	if !isListingMode(p.Mode()) {
		return m, nil
	}
	m.dlg = newTextDialog(DialogFilter, p.Side, "Filter:", p.Filter)
	return m, nil
}

// openRename opens F6 Rename against the selected entry, S3/local browsing
// modes only (spec.md §6's key table: "—" for Profile/Bucket).
func (m *Model) openRename() (tea.Model, tea.Cmd) {
	p := m.activePanel()
	if !isBrowsingMode(p.Mode()) {
		return m, nil
	}
	entry, ok := p.Selected()
	if !ok || entry.Kind == model.KindUp {
		return m, nil
	}
	m.dlg = newTextDialog(DialogRename, p.Side, "Rename "+entry.Name+" to:", entry.Name)
	return m, nil
}

// openMkdir opens F7: Mkdir on S3/local browsing modes, or the Bucket
// create-or-edit dialog on BucketList (spec.md §4.1's registry is "mutated
// only by the editor dialogs" — this is the bucket side of that editor).
func (m *Model) openMkdir() (tea.Model, tea.Cmd) {
	p := m.activePanel()
	if p.Mode() == panel.BucketList {
		return m.openBucketEditor(p)
	}
	if !isBrowsingMode(p.Mode()) {
		return m, nil
	}
	m.dlg = newTextDialog(DialogMkdir, p.Side, "New directory name:", "")
	return m, nil
}

// openBucketEditor opens DialogBucketEdit, pre-filled with the selected
// bucket's fields when one is selected, blank (create) otherwise.
func (m *Model) openBucketEditor(p *panel.State) (tea.Model, tea.Cmd) {
	frame := p.Frame()
	initial := ""
	if entry, ok := p.Selected(); ok && entry.Kind == model.KindBucket {
		if profile, ok := m.cfg.FindProfile(frame.Profile); ok {
			if b, ok := profile.FindBucket(entry.Name); ok {
				initial = bucketEditLine(b)
			}
		}
	}
	m.dlg = newTextDialog(DialogBucketEdit, p.Side, "name,region[,base_prefix]:", initial)
	return m, nil
}

// bucketEditLine renders b back into the comma-separated form
// commitBucketEdit parses, so editing a bucket opens pre-filled with its
// current values.
func bucketEditLine(b model.Bucket) string {
	return b.Name + "," + b.Region + "," + b.BasePrefix
}

// openDeleteConfirm opens F8 Delete confirmation on the selected entry.
func (m *Model) openDeleteConfirm() (tea.Model, tea.Cmd) {
	p := m.activePanel()
	if !isBrowsingMode(p.Mode()) {
		return m, nil
	}
	entry, ok := p.Selected()
	if !ok || entry.Kind == model.KindUp {
		return m, nil
	}
	m.dlg = newMessageDialog(DialogDeleteConfirm, p.Side, "Delete "+entry.Name+"? (y/n)")
	return m, nil
}

// openAdvanced opens F9: on ProfileList this is the Profile create-or-edit
// dialog, the profile side of spec.md §4.1's editor; everywhere else it
// reports the config file's path so the user can inspect it directly.
func (m *Model) openAdvanced() (tea.Model, tea.Cmd) {
	p := m.activePanel()
	if p.Mode() == panel.ProfileList {
		return m.openProfileEditor(p)
	}
	m.dlg = newMessageDialog(DialogAdvanced, m.active, "Config file: "+m.store.Path())
	return m, nil
}

// openProfileEditor opens DialogProfileEdit, pre-filled with the selected
// profile's fields when one is selected, blank (create) otherwise.
func (m *Model) openProfileEditor(p *panel.State) (tea.Model, tea.Cmd) {
	initial := ""
	if entry, ok := p.Selected(); ok && entry.Kind == model.KindProfile {
		if profile, ok := m.cfg.FindProfile(entry.Name); ok {
			initial = profile.Name + "," + profile.SetupScript
		}
	}
	m.dlg = newTextDialog(DialogProfileEdit, p.Side, "name,setup_script:", initial)
	return m, nil
}

func isListingMode(mode panel.Mode) bool {
	switch mode {
	case panel.ProfileList, panel.BucketList, panel.S3Browser, panel.LocalRoots, panel.LocalBrowser:
		return true
	default:
		return false
	}
}

func isBrowsingMode(mode panel.Mode) bool {
	return mode == panel.S3Browser || mode == panel.LocalBrowser
}

// handleDialogCancel closes whatever modal is open without committing it.
func (m *Model) handleDialogCancel() (tea.Model, tea.Cmd) {
	m.dlg = nil
	m.quitConfirm = false
	return m, nil
}

// forwardToDialog hands a raw key to the open modal's text widget (spec.md
// §4.10: everything but the globally-intercepted keys belongs to the
// focused input field).
func (m *Model) forwardToDialog(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.dlg == nil || m.dlg.kind == DialogHelp || m.dlg.kind == DialogDeleteConfirm || m.dlg.kind == DialogQuitConfirm {
		return m.handleConfirmKey(key)
	}
	if m.dlg.kind == DialogSort {
		return m.handleSortKey(key)
	}
	var cmd tea.Cmd
	m.dlg.input, cmd = m.dlg.input.Update(key)
	return m, cmd
}

// handleConfirmKey interprets y/n on a yes/no confirmation dialog (Delete,
// Quit); Help and Advanced ignore these keys and close only on Esc.
func (m *Model) handleConfirmKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.dlg == nil {
		return m, nil
	}
	if m.dlg.kind == DialogHelp || m.dlg.kind == DialogAdvanced {
		return m, nil // any non-Esc key leaves Help/Advanced open; Esc (DialogCancel) closes it
	}
	if key.Type != tea.KeyRunes {
		return m, nil
	}
	switch string(key.Runes) {
	case "y":
		return m.handleDialogSubmit()
	case "n":
		return m.handleDialogCancel()
	}
	return m, nil
}

// handleSortKey interprets the Sort dialog's single-letter shortcuts.
func (m *Model) handleSortKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Type != tea.KeyRunes {
		return m, nil
	}
	p := m.panelAt(m.dlg.side)
	key2 := p.Sort
	switch string(key.Runes) {
	case "n":
		key2.Field = model.SortByName
	case "s":
		key2.Field = model.SortBySize
	case "d":
		key2.Field = model.SortByDate
	case "r":
		if key2.Dir == model.Asc {
			key2.Dir = model.Desc
		} else {
			key2.Dir = model.Asc
		}
	default:
		return m, nil
	}
	p.SetSort(key2)
	return m, nil
}
