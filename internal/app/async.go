package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/eddi888/s3c/internal/panel"
	"github.com/eddi888/s3c/internal/s3cerr"
)

// handleListingLoaded installs a completed listing if its panel hasn't
// navigated away in the meantime (spec.md §5/§8's generation check, done by
// panel.State.SetListing itself).
func (m *Model) handleListingLoaded(msg ListingLoadedMsg) (tea.Model, tea.Cmd) {
	p := m.panelAt(msg.Side)
	if !p.SetListing(msg.Entries, msg.Generation) {
		return m, nil
	}
	if msg.Err != nil {
		m.setBanner(msg.Side, msg.Err.Error())
	}
	return m, nil
}

// handleScriptFinished chains into credential resolution once the setup
// script completes successfully (spec.md §4.2 steps 1→2).
func (m *Model) handleScriptFinished(msg ScriptFinishedMsg) (tea.Model, tea.Cmd) {
	p := m.panelAt(msg.Side)
	if p.IsStale(msg.Generation) {
		return m, nil
	}
	if msg.Err != nil {
		p.Loading = false
		m.setBanner(msg.Side, msg.Err.Error())
		return m, nil
	}
	profile, bucket := m.pendingProfile[msg.Side], m.pendingBucket[msg.Side]
	return m, m.resolveCredentialsCmd(msg.Side, profile, bucket, msg.Generation)
}

// handleCredentialsResolved descends into S3Browser on success, per
// spec.md §4.2 step 4 / §4.7's "BucketList + Enter: invoke C2; on success
// enter S3Browser(base_prefix ?? "")".
func (m *Model) handleCredentialsResolved(msg CredentialsResolvedMsg) (tea.Model, tea.Cmd) {
	p := m.panelAt(msg.Side)
	if p.IsStale(msg.Generation) {
		return m, nil
	}
	if msg.Err != nil {
		p.Loading = false
		m.setBanner(msg.Side, msg.Err.Error())
		return m, nil
	}

	bucket := m.pendingBucket[msg.Side]
	prefix := bucket.BasePrefix
	gen := p.Push(panel.Frame{Mode: panel.S3Browser, Profile: m.pendingProfile[msg.Side], Bucket: bucket.Name, Prefix: prefix})
	return m, m.listS3Cmd(msg.Side, m.gateways[msg.Side], prefix, gen)
}

// handlePreviewOpened installs the freshly opened preview's head chunk into
// its viewport.
func (m *Model) handlePreviewOpened(msg PreviewOpenedMsg) (tea.Model, tea.Cmd) {
	p := m.panelAt(msg.Side)
	if p.IsStale(msg.Generation) {
		return m, nil
	}
	p.Loading = false
	if msg.Err != nil {
		m.setBanner(msg.Side, msg.Err.Error())
		p.Pop()
		return m, nil
	}
	ps := m.previews[msg.Side]
	ps.view.ShowHead(ps.engine)
	return m, nil
}

// handlePreviewChunkLoaded updates the viewport after a forward fetch or an
// explicit Home/End jump (spec.md §4.5).
func (m *Model) handlePreviewChunkLoaded(msg PreviewChunkLoadedMsg) (tea.Model, tea.Cmd) {
	p := m.panelAt(msg.Side)
	if p.IsStale(msg.Generation) {
		return m, nil
	}
	ps := m.previews[msg.Side]
	if ps == nil {
		return m, nil
	}
	if msg.Err != nil {
		if s3cerr.Of(msg.Err) == s3cerr.NotFound {
			m.setBanner(msg.Side, "file was removed while previewing")
			ps.engine.Invalidate()
		} else {
			m.setBanner(msg.Side, msg.Err.Error())
		}
		return m, nil
	}
	switch msg.Jump {
	case JumpEnd:
		ps.view.ShowEnd(ps.engine)
	default:
		ps.view.ShowHead(ps.engine)
	}
	return m, nil
}

// handleConfigSaved reports a PersistenceError as a banner; success is
// silent (spec.md §7: banners communicate failures and completions, not
// every successful background save).
func (m *Model) handleConfigSaved(msg ConfigSavedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.setBanner(m.active, msg.Err.Error())
	}
	return m, nil
}
