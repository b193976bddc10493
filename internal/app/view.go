package app

import (
	"fmt"

	"github.com/eddi888/s3c/internal/panel"
	"github.com/eddi888/s3c/internal/preview"
	"github.com/eddi888/s3c/internal/view"
)

// View renders the current frame by projecting Model into a view.Snapshot
// and handing it to the View Renderer (internal/view, C9). Model never
// formats a string itself — that stays a pure function of state.
func (m *Model) View() string {
	snap := view.Snapshot{
		Width:  m.width,
		Height: m.height,
		Active: m.active,
		Panels: [2]view.PanelSnapshot{
			m.panelSnapshot(panel.Left),
			m.panelSnapshot(panel.Right),
		},
	}
	if m.dlg != nil {
		snap.Dialog = m.dialogSnapshot(m.dlg)
	}
	if m.foregroundJob != "" {
		if job, ok := m.jobs[m.foregroundJob]; ok {
			snap.Job = &view.JobSnapshot{Direction: job.Direction, Name: job.Dst, Progress: job.Progress()}
		}
	}
	return view.Render(snap)
}

func (m *Model) panelSnapshot(side panel.Side) view.PanelSnapshot {
	p := m.panelAt(side)
	snap := view.PanelSnapshot{
		Mode:     p.Mode(),
		Location: panelLocation(p.Frame()),
		Entries:  p.Listing(),
		Cursor:   p.Cursor,
		Scroll:   p.Scroll,
		Loading:  p.Loading,
		Banner:   p.Banner,
		Sort:     p.Sort,
		Filter:   p.Filter,
	}
	if p.Mode() == panel.Preview {
		if ps := m.previews[side]; ps != nil {
			snap.Preview = &view.PreviewSnapshot{
				Name:       ps.name,
				Body:       ps.view.View(),
				ChunkLabel: chunkLabel(ps.engine),
			}
		}
	}
	return snap
}

func panelLocation(f panel.Frame) string {
	switch f.Mode {
	case panel.ProfileList:
		return "profiles"
	case panel.BucketList:
		return f.Profile
	case panel.S3Browser:
		return f.Profile + "/" + f.Bucket + "/" + f.Prefix
	case panel.LocalRoots:
		return "drives"
	case panel.LocalBrowser, panel.Preview:
		return f.Path
	default:
		return ""
	}
}

func chunkLabel(e *preview.Engine) string {
	total := e.TotalSize()
	if total <= preview.ChunkSize {
		return "CHUNK 1/1"
	}
	totalChunks := (total + preview.ChunkSize - 1) / preview.ChunkSize
	loaded := int64(0)
	if e.HeadLoaded() {
		loaded++
	}
	if e.TailLoaded() {
		loaded++
	}
	return fmt.Sprintf("CHUNK %d/%d", loaded, totalChunks)
}

func (m *Model) dialogSnapshot(d *modal) *view.DialogSnapshot {
	snap := &view.DialogSnapshot{
		Prompt:      d.prompt,
		Message:     d.message,
		IsTextInput: d.kind == DialogFilter || d.kind == DialogRename || d.kind == DialogMkdir ||
			d.kind == DialogBucketEdit || d.kind == DialogProfileEdit,
	}
	if snap.IsTextInput {
		snap.Value = d.input.View()
	}
	snap.Title = dialogTitle(d.kind)
	return snap
}

func dialogTitle(kind DialogKind) string {
	switch kind {
	case DialogHelp:
		return "Help"
	case DialogSort:
		return "Sort"
	case DialogFilter:
		return "Filter"
	case DialogRename:
		return "Rename"
	case DialogMkdir:
		return "New Directory"
	case DialogDeleteConfirm:
		return "Delete"
	case DialogAdvanced:
		return "Advanced"
	case DialogQuitConfirm:
		return "Quit"
	case DialogBucketEdit:
		return "Bucket"
	case DialogProfileEdit:
		return "Profile"
	default:
		return ""
	}
}
