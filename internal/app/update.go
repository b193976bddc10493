package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eddi888/s3c/internal/input"
	"github.com/eddi888/s3c/internal/panel"
)

// Update is the Message Loop's reducer (spec.md §4.8): a single, total
// dispatch over every message kind the application produces. Listing,
// preview, credential and config I/O are expressed as the returned tea.Cmd;
// transfer jobs are handed to (and cancelled on) the transfer Manager
// directly, and cached clients are evicted from the resolver inline.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		action := input.Translate(msg, m.activePanel().Mode(), m.dlg != nil)
		return m.handleAction(action, msg)

	case TickMsg:
		m.expireBanners(time.Time(msg))
		return m, tickCmd()

	case ListingLoadedMsg:
		return m.handleListingLoaded(msg)
	case CredentialsResolvedMsg:
		return m.handleCredentialsResolved(msg)
	case ScriptFinishedMsg:
		return m.handleScriptFinished(msg)
	case PreviewOpenedMsg:
		return m.handlePreviewOpened(msg)
	case PreviewChunkLoadedMsg:
		return m.handlePreviewChunkLoaded(msg)
	case TransferProgressMsg:
		return m.handleTransferProgress(msg)
	case TransferCompletedMsg:
		return m.handleTransferCompleted(msg)
	case ConfigSavedMsg:
		return m.handleConfigSaved(msg)
	}
	return m, nil
}

// handleAction dispatches a translated key action. Navigation and dialog
// actions call straight into the handlers in nav.go/dialogs.go/
// dialog_submit.go; key is only needed for DialogPassThrough, where the
// open modal's own widget must see the raw event.
func (m *Model) handleAction(a input.Action, key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.Kind {
	case input.Enter:
		return m.handleEnter()
	case input.Back:
		return m.handleBack()
	case input.Tab:
		return m.handleTab()
	case input.CancelJob:
		return m.handleCancelJob()
	case input.Quit:
		return m.handleQuit()

	case input.CursorUp:
		m.activePanel().MoveCursor(-1)
		return m, nil
	case input.CursorDown:
		m.activePanel().MoveCursor(1)
		return m, nil
	case input.PageUp:
		m.activePanel().MoveCursor(-pageSize)
		return m, nil
	case input.PageDown:
		m.activePanel().MoveCursor(pageSize)
		return m, nil

	case input.PreviewHome:
		return m.handlePreviewHomeKey()
	case input.PreviewEnd:
		return m.handlePreviewEndKey()

	case input.OpenHelp:
		return m.openHelp()
	case input.OpenSort:
		return m.openSort()
	case input.OpenView:
		switch p := m.activePanel(); p.Mode() {
		case panel.ProfileList:
			return m.openProfileEditor(p)
		case panel.BucketList:
			return m.openBucketEditor(p)
		}
		return m.handleEnter()
	case input.OpenFilter:
		return m.openFilter()
	case input.OpenRename:
		return m.openRename()
	case input.OpenMkdir:
		return m.openMkdir()
	case input.OpenDeleteConfirm:
		return m.openDeleteConfirm()
	case input.OpenAdvanced:
		return m.openAdvanced()
	case input.Copy:
		return m.startCopy()

	case input.DialogSubmit:
		return m.handleDialogSubmit()
	case input.DialogCancel:
		return m.handleDialogCancel()
	case input.DialogPassThrough:
		return m.forwardToDialog(key)
	}
	return m, nil
}

// pageSize is how far PgUp/PgDown move the cursor; handleResize widens it
// to roughly a panel's visible row count once the terminal size is known.
var pageSize = 10
