package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eddi888/s3c/internal/config"
	"github.com/eddi888/s3c/internal/creds"
	"github.com/eddi888/s3c/internal/fsgw"
	"github.com/eddi888/s3c/internal/model"
	"github.com/eddi888/s3c/internal/panel"
	"github.com/eddi888/s3c/internal/preview"
	"github.com/eddi888/s3c/internal/s3gw"
)

// loadProfilesCmd enumerates the credentials-file profiles and merges them
// with Config-only profiles (spec.md §4.1), the async-but-local-disk read
// ProfileList needs before it has anything to show.
func (m *Model) loadProfilesCmd(side panel.Side, generation int) tea.Cmd {
	return func() tea.Msg {
		credNames, err := config.ListCredentialProfiles(config.CredentialsFilePath(m.homeDir))
		if err != nil {
			return ListingLoadedMsg{Side: side, Generation: generation, Err: err}
		}
		merged := config.MergeProfiles(credNames, m.cfg)
		entries := make([]model.Entry, 0, len(merged)+1)
		entries = append(entries, model.Entry{Name: "..", Kind: model.KindUp, Size: -1})
		for _, p := range merged {
			entries = append(entries, model.Entry{Name: p.Name, Kind: model.KindProfile, Size: -1, Orphan: p.Orphan})
		}
		return ListingLoadedMsg{Side: side, Generation: generation, Entries: entries}
	}
}

// listLocalRootsCmd lists the LocalRoots entry point: the filesystem root
// ("/" on Unix) or, on Windows, fsgw's drive-enumeration pseudo-root.
func (m *Model) listLocalRootsCmd(side panel.Side, generation int) tea.Cmd {
	return m.listLocalCmd(side, localRootsPath(), generation)
}

// deleteS3Cmd and friends back F8/F7/F6 on an S3Browser panel.
func (m *Model) deleteS3Cmd(side panel.Side, gw *s3gw.Gateway, key string, generation int) tea.Cmd {
	return func() tea.Msg {
		err := gw.Delete(m.ctx, key)
		entries, listErr := m.listS3WithUp(gw, parentPrefix(key))
		if err == nil {
			err = listErr
		}
		return ListingLoadedMsg{Side: side, Generation: generation, Entries: entries, Err: err}
	}
}

func (m *Model) mkdirS3Cmd(side panel.Side, gw *s3gw.Gateway, prefix, newName string, generation int) tea.Cmd {
	return func() tea.Msg {
		err := gw.Mkdir(m.ctx, prefix+newName+"/")
		entries, listErr := m.listS3WithUp(gw, prefix)
		if err == nil {
			err = listErr
		}
		return ListingLoadedMsg{Side: side, Generation: generation, Entries: entries, Err: err}
	}
}

func (m *Model) renameS3Cmd(side panel.Side, gw *s3gw.Gateway, prefix, srcKey, dstKey string, generation int) tea.Cmd {
	return func() tea.Msg {
		err := gw.Rename(m.ctx, srcKey, dstKey)
		entries, listErr := m.listS3WithUp(gw, prefix)
		if err == nil {
			err = listErr
		}
		return ListingLoadedMsg{Side: side, Generation: generation, Entries: entries, Err: err}
	}
}

// deleteLocalCmd/mkdirLocalCmd/renameLocalCmd are the Filesystem Gateway
// equivalents, used on a LocalBrowser panel.
func (m *Model) deleteLocalCmd(side panel.Side, path string, generation int) tea.Cmd {
	return func() tea.Msg {
		err := m.fs.Delete(m.ctx, path)
		entries, listErr := m.fs.List(m.ctx, parentDir(path))
		if err == nil {
			err = listErr
		}
		return ListingLoadedMsg{Side: side, Generation: generation, Entries: entries, Err: err}
	}
}

func (m *Model) mkdirLocalCmd(side panel.Side, dir, newName string, generation int) tea.Cmd {
	return func() tea.Msg {
		err := m.fs.Mkdir(m.ctx, joinPath(dir, newName))
		entries, listErr := m.fs.List(m.ctx, dir)
		if err == nil {
			err = listErr
		}
		return ListingLoadedMsg{Side: side, Generation: generation, Entries: entries, Err: err}
	}
}

func (m *Model) renameLocalCmd(side panel.Side, dir, src, dst string, generation int) tea.Cmd {
	return func() tea.Msg {
		err := m.fs.Rename(m.ctx, src, dst)
		entries, listErr := m.fs.List(m.ctx, dir)
		if err == nil {
			err = listErr
		}
		return ListingLoadedMsg{Side: side, Generation: generation, Entries: entries, Err: err}
	}
}

// listS3Cmd lists prefix on gw, tagging the result with generation so a
// late reply after the panel has navigated elsewhere is discarded (spec.md
// §5).
func (m *Model) listS3Cmd(side panel.Side, gw *s3gw.Gateway, prefix string, generation int) tea.Cmd {
	return func() tea.Msg {
		entries, err := m.listS3WithUp(gw, prefix)
		return ListingLoadedMsg{Side: side, Generation: generation, Entries: entries, Err: err}
	}
}

// listS3WithUp lists prefix on gw and prepends the synthetic Up entry.
// Unlike the filesystem, an S3Browser always has somewhere to ascend to —
// the bucket root's ".." leads back to BucketList rather than nothing — so
// the prepend is unconditional here, the way bucketListEntries prepends its
// own (gw.List itself deliberately omits it; see its test). spec.md §8
// scenario 3 expects `['..', 'a/', 'c.txt']` at the bucket root.
func (m *Model) listS3WithUp(gw *s3gw.Gateway, prefix string) ([]model.Entry, error) {
	listed, err := gw.List(m.ctx, prefix)
	entries := make([]model.Entry, 0, len(listed)+1)
	entries = append(entries, model.Entry{Name: "..", Kind: model.KindUp, Size: -1})
	entries = append(entries, listed...)
	return entries, err
}

// listLocalCmd lists path on the local filesystem.
func (m *Model) listLocalCmd(side panel.Side, path string, generation int) tea.Cmd {
	return func() tea.Msg {
		entries, err := m.fs.List(m.ctx, path)
		return ListingLoadedMsg{Side: side, Generation: generation, Entries: entries, Err: err}
	}
}

// resolveCredentialsCmd runs spec.md §4.2 steps 2-4 (the setup script, step
// 1, is handled separately via runSetupScriptCmd since it must suspend the
// TUI). On success the resolved Gateway is stashed directly on m — tea.Cmd
// closures run on their own goroutine but nothing else touches
// m.gateways[side] until the resulting message is processed on the reducer
// goroutine, so this is data-race free in practice though not enforced by
// the type system.
func (m *Model) resolveCredentialsCmd(side panel.Side, profileName string, bucket model.Bucket, generation int) tea.Cmd {
	return func() tea.Msg {
		gw, err := m.resolver.Resolve(m.ctx, profileName, bucket)
		if err == nil {
			m.gateways[side] = gw
			m.resolvedProfile[side] = profileName
			m.resolvedBucket[side] = bucket.Name
		}
		return CredentialsResolvedMsg{Side: side, Generation: generation, Err: err}
	}
}

// runSetupScriptCmd suspends the TUI and runs profile.SetupScript through
// tea.ExecProcess, which owns leaving and re-entering raw mode around the
// subprocess (spec.md §5's TUI-suspension contract) — the same contract
// creds.ShellCommand/ClassifyExit implement for callers outside a TUI.
func (m *Model) runSetupScriptCmd(side panel.Side, script string, generation int) tea.Cmd {
	cmd := creds.ShellCommand(m.ctx, script)
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return ScriptFinishedMsg{Side: side, Generation: generation, Err: creds.ClassifyExit(err)}
	})
}

// openPreviewCmd opens src for previewing, producing the initial head chunk.
func (m *Model) openPreviewCmd(side panel.Side, src previewSourceOpener, generation int) tea.Cmd {
	return func() tea.Msg {
		ps := src.open()
		err := ps.engine.Open(m.ctx)
		if err == nil {
			m.previews[side] = ps
		}
		return PreviewOpenedMsg{Side: side, Generation: generation, Err: err}
	}
}

// previewSourceOpener defers Source construction (which gateway, which key
// or path) until the command runs.
type previewSourceOpener interface {
	open() *previewState
}

type s3PreviewOpener struct {
	gw   *s3gw.Gateway
	key  string
	name string
}

func (o s3PreviewOpener) open() *previewState {
	return newPreviewState(preview.S3Source{Gateway: o.gw, Key: o.key}, o.name)
}

type localPreviewOpener struct {
	fs   *fsgw.Gateway
	path string
	name string
}

func (o localPreviewOpener) open() *previewState {
	return newPreviewState(preview.FileSource{Gateway: o.fs, Path: o.path}, o.name)
}

// fetchMoreCmd loads the next forward chunk of the active preview.
func (m *Model) fetchMoreCmd(side panel.Side, generation int) tea.Cmd {
	ps := m.previews[side]
	return func() tea.Msg {
		err := ps.engine.FetchMore(m.ctx)
		return PreviewChunkLoadedMsg{Side: side, Generation: generation, Jump: JumpNone, Err: err}
	}
}

// previewHomeCmd and previewEndCmd implement spec.md §4.5's Home/End jumps.
func (m *Model) previewHomeCmd(side panel.Side, generation int) tea.Cmd {
	ps := m.previews[side]
	return func() tea.Msg {
		err := ps.engine.Home(m.ctx)
		return PreviewChunkLoadedMsg{Side: side, Generation: generation, Jump: JumpHome, Err: err}
	}
}

func (m *Model) previewEndCmd(side panel.Side, generation int) tea.Cmd {
	ps := m.previews[side]
	return func() tea.Msg {
		err := ps.engine.End(m.ctx)
		return PreviewChunkLoadedMsg{Side: side, Generation: generation, Jump: JumpEnd, Err: err}
	}
}

// saveConfigCmd persists m.cfg, per spec.md §4.1's "persisted after every
// mutation."
func (m *Model) saveConfigCmd() tea.Cmd {
	cfg := m.cfg
	return func() tea.Msg {
		return ConfigSavedMsg{Err: m.store.Save(cfg)}
	}
}

// submitTransferCmd receives, from the reducer (see transferops.go), a
// concrete transfer.Execute closure already bound to the right
// gateway/key/path pair; it records the job and hands it to the Manager.
// Events reach the reducer through the standing waitTransferEventCmd pump.
func (m *Model) submitTransferCmd(ctx context.Context, job model.Job, exec transferFunc, cleanup func()) {
	m.jobs[job.ID] = job
	m.transfer.Submit(ctx, job, exec, cleanup)
}

type transferFunc = func(ctx context.Context, progress func(int64)) error

// waitTransferEventCmd blocks for the next event off the Manager's shared
// channel and turns it into a message; the reducer re-issues this command
// after every event so the pump never stalls (the standard bubbletea
// "listen on a channel" idiom).
func (m *Model) waitTransferEventCmd() tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-m.transfer.Events()
		if !ok {
			return nil
		}
		if evt.Done {
			return TransferCompletedMsg{JobID: evt.JobID, Err: evt.Err}
		}
		return TransferProgressMsg{JobID: evt.JobID, Transferred: evt.Transferred}
	}
}
