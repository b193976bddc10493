package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eddi888/s3c/internal/model"
	"github.com/eddi888/s3c/internal/panel"
)

// handleDialogSubmit commits the open modal's effect against the panel it
// was opened on, then closes it.
func (m *Model) handleDialogSubmit() (tea.Model, tea.Cmd) {
	dlg := m.dlg
	if dlg == nil {
		return m, nil
	}
	m.dlg = nil

	p := m.panelAt(dlg.side)
	switch dlg.kind {
	case DialogFilter:
		p.SetFilter(dlg.input.Value())
		return m, nil
	case DialogRename:
		return m.commitRename(p, dlg.input.Value())
	case DialogMkdir:
		return m.commitMkdir(p, dlg.input.Value())
	case DialogDeleteConfirm:
		return m.commitDelete(p)
	case DialogQuitConfirm:
		m.quitting = true
		return m, tea.Quit
	case DialogBucketEdit:
		return m.commitBucketEdit(p, dlg.input.Value())
	case DialogProfileEdit:
		return m.commitProfileEdit(p, dlg.input.Value())
	}
	return m, nil
}

func (m *Model) commitRename(p *panel.State, newName string) (tea.Model, tea.Cmd) {
	entry, ok := p.Selected()
	if !ok || newName == "" {
		return m, nil
	}
	frame := p.Frame()
	gen := p.Bump()
	if frame.Mode == panel.S3Browser {
		src := frame.Prefix + entry.Name
		dst := frame.Prefix + newName
		if entry.Kind == model.KindDirectory {
			src += "/"
			dst += "/"
		}
		return m, m.renameS3Cmd(p.Side, m.gateways[p.Side], frame.Prefix, src, dst, gen)
	}
	dir := frame.Path
	src := joinPath(dir, entry.Name)
	dst := joinPath(dir, newName)
	return m, m.renameLocalCmd(p.Side, dir, src, dst, gen)
}

func (m *Model) commitMkdir(p *panel.State, name string) (tea.Model, tea.Cmd) {
	if name == "" {
		return m, nil
	}
	frame := p.Frame()
	gen := p.Bump()
	if frame.Mode == panel.S3Browser {
		return m, m.mkdirS3Cmd(p.Side, m.gateways[p.Side], frame.Prefix, name, gen)
	}
	return m, m.mkdirLocalCmd(p.Side, frame.Path, name, gen)
}

// commitBucketEdit applies the Bucket create-or-edit dialog: "name,region[,base_prefix]"
// upserted into the BucketList frame's profile, per spec.md §4.1's "mutated
// only by the editor dialogs," then persisted via saveConfigCmd.
func (m *Model) commitBucketEdit(p *panel.State, raw string) (tea.Model, tea.Cmd) {
	name, region, basePrefix, ok := parseBucketEditLine(raw)
	if !ok {
		return m, nil
	}
	if basePrefix != "" && !strings.HasSuffix(basePrefix, "/") {
		basePrefix += "/"
	}
	bucket := model.Bucket{Name: name, Region: region, BasePrefix: basePrefix}

	frame := p.Frame()
	profile := m.upsertProfile(frame.Profile)
	bucketIdx := -1
	for i, b := range profile.Buckets {
		if b.Name == name {
			bucketIdx = i
			break
		}
	}
	if bucketIdx == -1 {
		profile.Buckets = append(profile.Buckets, bucket)
	} else {
		profile.Buckets[bucketIdx] = bucket
	}

	p.SetListing(bucketListEntries(*profile), p.Generation())
	return m, m.saveConfigCmd()
}

// parseBucketEditLine splits the dialog's "name,region,base_prefix" line;
// only name is required.
func parseBucketEditLine(raw string) (name, region, basePrefix string, ok bool) {
	parts := strings.SplitN(raw, ",", 3)
	name = strings.TrimSpace(parts[0])
	if name == "" {
		return "", "", "", false
	}
	if len(parts) > 1 {
		region = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		basePrefix = strings.TrimSpace(parts[2])
	}
	return name, region, basePrefix, true
}

// commitProfileEdit applies the Profile create-or-edit dialog:
// "name,setup_script" upserted into Config, then persisted and the
// ProfileList refreshed to pick up the new/edited profile.
func (m *Model) commitProfileEdit(p *panel.State, raw string) (tea.Model, tea.Cmd) {
	name, setupScript, ok := parseProfileEditLine(raw)
	if !ok {
		return m, nil
	}
	profile := m.upsertProfile(name)
	profile.SetupScript = setupScript

	gen := p.Bump()
	return m, tea.Batch(m.saveConfigCmd(), m.loadProfilesCmd(p.Side, gen))
}

// parseProfileEditLine splits the dialog's "name,setup_script" line; only
// name is required.
func parseProfileEditLine(raw string) (name, setupScript string, ok bool) {
	parts := strings.SplitN(raw, ",", 2)
	name = strings.TrimSpace(parts[0])
	if name == "" {
		return "", "", false
	}
	if len(parts) > 1 {
		setupScript = strings.TrimSpace(parts[1])
	}
	return name, setupScript, true
}

// upsertProfile returns a pointer into m.cfg.Profiles for name, appending a
// new (empty) profile first if none exists yet.
func (m *Model) upsertProfile(name string) *model.Profile {
	for i := range m.cfg.Profiles {
		if m.cfg.Profiles[i].Name == name {
			return &m.cfg.Profiles[i]
		}
	}
	m.cfg.Profiles = append(m.cfg.Profiles, model.Profile{Name: name})
	return &m.cfg.Profiles[len(m.cfg.Profiles)-1]
}

func (m *Model) commitDelete(p *panel.State) (tea.Model, tea.Cmd) {
	entry, ok := p.Selected()
	if !ok {
		return m, nil
	}
	frame := p.Frame()
	gen := p.Bump()
	if frame.Mode == panel.S3Browser {
		key := frame.Prefix + entry.Name
		if entry.Kind == model.KindDirectory {
			key += "/"
		}
		return m, m.deleteS3Cmd(p.Side, m.gateways[p.Side], key, gen)
	}
	return m, m.deleteLocalCmd(p.Side, joinPath(frame.Path, entry.Name), gen)
}

func (m *Model) handlePreviewHomeKey() (tea.Model, tea.Cmd) {
	p := m.activePanel()
	if p.Mode() != panel.Preview {
		return m, nil
	}
	return m, m.previewHomeCmd(p.Side, p.Generation())
}

func (m *Model) handlePreviewEndKey() (tea.Model, tea.Cmd) {
	p := m.activePanel()
	if p.Mode() != panel.Preview {
		return m, nil
	}
	return m, m.previewEndCmd(p.Side, p.Generation())
}
