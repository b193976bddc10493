package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/eddi888/s3c/internal/model"
	"github.com/eddi888/s3c/internal/panel"
)

// handleEnter implements spec.md §4.7's transitions for whichever mode the
// active panel is currently in. A panel already Loading drops further Enter
// presses (spec.md §4.8) rather than racing a second request.
func (m *Model) handleEnter() (tea.Model, tea.Cmd) {
	p := m.activePanel()
	if p.Loading {
		return m, nil
	}
	entry, ok := p.Selected()
	if !ok {
		return m, nil
	}
	if entry.Kind == model.KindUp {
		return m.handleBack()
	}

	switch p.Mode() {
	case panel.ModeSelect:
		return m.enterModeSelect(p, entry)
	case panel.ProfileList:
		return m.enterProfile(p, entry)
	case panel.BucketList:
		return m.enterBucket(p, entry)
	case panel.S3Browser:
		return m.enterS3(p, entry)
	case panel.LocalRoots, panel.LocalBrowser:
		return m.enterLocal(p, entry)
	case panel.Preview:
		return m, nil
	}
	return m, nil
}

func (m *Model) enterModeSelect(p *panel.State, entry model.Entry) (tea.Model, tea.Cmd) {
	switch entry.Name {
	case modeSelectNameS3:
		gen := p.Push(panel.Frame{Mode: panel.ProfileList})
		return m, m.loadProfilesCmd(p.Side, gen)
	case modeSelectNameLocal:
		gen := p.Push(panel.Frame{Mode: panel.LocalRoots})
		return m, m.listLocalRootsCmd(p.Side, gen)
	}
	return m, nil
}

func (m *Model) enterProfile(p *panel.State, entry model.Entry) (tea.Model, tea.Cmd) {
	if entry.Orphan {
		m.setBanner(p.Side, "profile "+entry.Name+" has no matching section in the credentials file")
		return m, nil
	}
	profile, ok := m.cfg.FindProfile(entry.Name)
	if !ok {
		profile = model.Profile{Name: entry.Name}
	}
	gen := p.Push(panel.Frame{Mode: panel.BucketList, Profile: entry.Name})
	p.SetListing(bucketListEntries(profile), gen)
	return m, nil
}

func (m *Model) enterBucket(p *panel.State, entry model.Entry) (tea.Model, tea.Cmd) {
	frame := p.Frame()
	profile, _ := m.cfg.FindProfile(frame.Profile)
	bucket, ok := profile.FindBucket(entry.Name)
	if !ok {
		m.setBanner(p.Side, "bucket "+entry.Name+" is no longer in the config")
		return m, nil
	}

	p.Loading = true
	gen := p.Bump()
	m.pendingProfile[p.Side] = profile.Name
	m.pendingBucket[p.Side] = bucket

	if profile.SetupScript != "" {
		return m, m.runSetupScriptCmd(p.Side, profile.SetupScript, gen)
	}
	return m, m.resolveCredentialsCmd(p.Side, profile.Name, bucket, gen)
}

func (m *Model) enterS3(p *panel.State, entry model.Entry) (tea.Model, tea.Cmd) {
	frame := p.Frame()
	gw := m.gateways[p.Side]
	if entry.Kind == model.KindDirectory {
		childPrefix := frame.Prefix + entry.Name + "/"
		gen := p.Push(panel.Frame{Mode: panel.S3Browser, Profile: frame.Profile, Bucket: frame.Bucket, Prefix: childPrefix})
		return m, m.listS3Cmd(p.Side, gw, childPrefix, gen)
	}
	key := frame.Prefix + entry.Name
	gen := p.Push(panel.Frame{Mode: panel.Preview, Profile: frame.Profile, Bucket: frame.Bucket, Prefix: frame.Prefix})
	opener := s3PreviewOpener{gw: gw, key: key, name: entry.Name}
	return m, m.openPreviewCmd(p.Side, opener, gen)
}

func (m *Model) enterLocal(p *panel.State, entry model.Entry) (tea.Model, tea.Cmd) {
	frame := p.Frame()
	childPath := joinPath(frame.Path, entry.Name)
	if frame.Path == "" {
		childPath = entry.Name
	}
	if entry.Kind == model.KindDirectory {
		gen := p.Push(panel.Frame{Mode: panel.LocalBrowser, Path: childPath})
		return m, m.listLocalCmd(p.Side, childPath, gen)
	}
	gen := p.Push(panel.Frame{Mode: panel.Preview, Path: frame.Path})
	opener := localPreviewOpener{fs: m.fs, path: childPath, name: entry.Name}
	return m, m.openPreviewCmd(p.Side, opener, gen)
}

// handleBack implements "Esc/.. ascends or closes modal" (spec.md §6). At
// the true mode-stack root (ModeSelect) it asks for quit confirmation
// instead, since there is nowhere left to ascend to.
func (m *Model) handleBack() (tea.Model, tea.Cmd) {
	if m.dlg != nil {
		return m.handleDialogCancel()
	}

	p := m.activePanel()
	if p.Mode() == panel.Preview {
		m.previews[p.Side] = nil
	}
	if p.Mode() == panel.S3Browser && m.atBucketRoot(p) {
		// bucket root: pop out of S3Browser back to BucketList and drop the
		// cached client, per spec.md §4.2's "dropped when the user
		// navigates out of that bucket."
		profile, bucket := m.resolvedProfile[p.Side], m.resolvedBucket[p.Side]
		if profile != "" {
			m.resolver.Evict(profile, bucket)
		}
		m.gateways[p.Side] = nil
	}
	if p.AtRoot() {
		m.quitConfirm = true
		m.dlg = newMessageDialog(DialogQuitConfirm, p.Side, "Quit s3c?")
		return m, nil
	}

	gen := p.Pop()
	return m, m.refreshCmd(p, gen)
}

// atBucketRoot reports whether p's current S3Browser frame is the one
// handleCredentialsResolved pushed on entering the bucket — Prefix equal to
// the configured bucket's BasePrefix, not necessarily "" (spec.md §4.2/§9.2:
// the cache entry is dropped "when the user navigates out of that bucket",
// which for a bucket with a non-empty base_prefix is still one Back press
// up from its deepest-nested browsing, not from the filesystem root "").
func (m *Model) atBucketRoot(p *panel.State) bool {
	frame := p.Frame()
	profile, ok := m.cfg.FindProfile(frame.Profile)
	if !ok {
		return frame.Prefix == ""
	}
	bucket, ok := profile.FindBucket(frame.Bucket)
	if !ok {
		return frame.Prefix == ""
	}
	return frame.Prefix == bucket.BasePrefix
}

// refreshCmd re-issues a listing request for p's current (post-Pop) frame,
// since ascending a level always needs a fresh listing.
func (m *Model) refreshCmd(p *panel.State, gen int) tea.Cmd {
	frame := p.Frame()
	switch frame.Mode {
	case panel.ModeSelect:
		p.SetListing(modeSelectEntries(), gen)
		return nil
	case panel.ProfileList:
		return m.loadProfilesCmd(p.Side, gen)
	case panel.BucketList:
		profile, _ := m.cfg.FindProfile(frame.Profile)
		p.SetListing(bucketListEntries(profile), gen)
		return nil
	case panel.S3Browser:
		return m.listS3Cmd(p.Side, m.gateways[p.Side], frame.Prefix, gen)
	case panel.LocalRoots:
		return m.listLocalRootsCmd(p.Side, gen)
	case panel.LocalBrowser:
		return m.listLocalCmd(p.Side, frame.Path, gen)
	}
	return nil
}

func (m *Model) handleTab() (tea.Model, tea.Cmd) {
	m.active = m.inactiveSide()
	return m, nil
}

func (m *Model) handleFocus(side panel.Side) (tea.Model, tea.Cmd) {
	m.active = side
	return m, nil
}

func (m *Model) handleCancelJob() (tea.Model, tea.Cmd) {
	if m.foregroundJob == "" {
		return m, nil
	}
	m.transfer.Cancel(m.foregroundJob)
	return m, nil
}

func (m *Model) handleQuit() (tea.Model, tea.Cmd) {
	if len(m.jobs) == 0 {
		m.quitting = true
		return m, tea.Quit
	}
	m.quitConfirm = true
	m.dlg = newMessageDialog(DialogQuitConfirm, m.active, "Jobs are still running. Quit anyway?")
	return m, nil
}
