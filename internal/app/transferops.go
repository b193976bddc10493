package app

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eddi888/s3c/internal/fsgw"
	"github.com/eddi888/s3c/internal/model"
	"github.com/eddi888/s3c/internal/panel"
	"github.com/eddi888/s3c/internal/s3gw"
	"github.com/eddi888/s3c/internal/transfer"
)

// startCopy implements F5 (spec.md §4.7's "the inactive panel determines
// the target of Copy: S3↔Filesystem"). Same-kind pairs (S3↔S3, local↔local)
// are out of scope (spec.md §1's Non-goals, §9's open question on
// cross-bucket S3 copy).
func (m *Model) startCopy() (tea.Model, tea.Cmd) {
	src := m.activePanel()
	dst := m.panelAt(m.inactiveSide())
	if !isBrowsingMode(src.Mode()) || !isBrowsingMode(dst.Mode()) || src.Mode() == dst.Mode() {
		return m, nil
	}
	entry, ok := src.Selected()
	if !ok || entry.Kind == model.KindUp || entry.Kind == model.KindDirectory {
		return m, nil
	}

	if src.Mode() == panel.S3Browser {
		m.startDownload(src, dst, entry)
	} else {
		m.startUpload(src, dst, entry)
	}
	return m, nil
}

func (m *Model) startDownload(src, dst *panel.State, entry model.Entry) {
	srcFrame, dstFrame := src.Frame(), dst.Frame()
	key := srcFrame.Prefix + entry.Name
	destPath := joinPath(dstFrame.Path, entry.Name)
	gw := m.gateways[src.Side]

	job := model.Job{ID: transfer.NewJobID(), Direction: model.Down, Src: key, Dst: destPath, TotalBytes: entry.Size}
	exec := func(ctx context.Context, progress func(int64)) error {
		return downloadToFile(ctx, gw, key, destPath, entry.Size, progress)
	}
	cleanup := func() { os.Remove(destPath) }

	m.foregroundJob = job.ID
	m.submitTransferCmd(m.ctx, job, exec, cleanup)
}

func (m *Model) startUpload(src, dst *panel.State, entry model.Entry) {
	srcFrame, dstFrame := src.Frame(), dst.Frame()
	srcPath := joinPath(srcFrame.Path, entry.Name)
	destKey := dstFrame.Prefix + entry.Name
	gw := m.gateways[dst.Side]

	job := model.Job{ID: transfer.NewJobID(), Direction: model.Up, Src: srcPath, Dst: destKey, TotalBytes: entry.Size}
	exec := func(ctx context.Context, progress func(int64)) error {
		return uploadFromFile(ctx, m.fs, gw, srcPath, destKey, progress)
	}
	cleanup := func() { gw.Delete(context.Background(), destKey) }

	m.foregroundJob = job.ID
	m.submitTransferCmd(m.ctx, job, exec, cleanup)
}

func downloadToFile(ctx context.Context, gw *s3gw.Gateway, key, destPath string, size int64, progress func(int64)) error {
	f, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return gw.Download(ctx, key, f, size, s3gw.ProgressFunc(progress))
}

func uploadFromFile(ctx context.Context, fs *fsgw.Gateway, gw *s3gw.Gateway, srcPath, destKey string, progress func(int64)) error {
	f, size, err := fs.Open(srcPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return gw.Put(ctx, destKey, f, size, s3gw.ProgressFunc(progress))
}

// handleTransferProgress updates the foregrounded job's byte count, per
// spec.md §4.6's coalesced progress reporting.
func (m *Model) handleTransferProgress(msg TransferProgressMsg) (tea.Model, tea.Cmd) {
	if job, ok := m.jobs[msg.JobID]; ok {
		job.Transferred = msg.Transferred
		job.Status = model.Running
		m.jobs[msg.JobID] = job
	}
	return m, m.waitTransferEventCmd()
}

// handleTransferCompleted marks the job done/failed and refreshes the
// destination panel, per spec.md §4.6's "completion triggers a refresh of
// the destination panel listing."
func (m *Model) handleTransferCompleted(msg TransferCompletedMsg) (tea.Model, tea.Cmd) {
	job, ok := m.jobs[msg.JobID]
	if ok {
		job.Err = msg.Err
		if msg.Err != nil {
			job.Status = model.Failed
		} else {
			job.Status = model.Done
		}
		m.jobs[msg.JobID] = job
	}
	if m.foregroundJob == msg.JobID {
		m.foregroundJob = ""
	}

	var cmds []tea.Cmd
	cmds = append(cmds, m.waitTransferEventCmd())
	if ok {
		if destSide, destCmd := m.destinationRefreshCmd(job); destCmd != nil {
			_ = destSide
			cmds = append(cmds, destCmd)
		}
		if msg.Err != nil {
			m.setBanner(m.destinationSide(job), "transfer failed: "+msg.Err.Error())
		} else {
			m.setBanner(m.destinationSide(job), "transfer complete: "+job.Dst)
		}
	}
	return m, tea.Batch(cmds...)
}

// destinationSide reports which panel a Job's destination lives in: Down
// jobs land on the first panel (Left, then Right) in LocalBrowser mode; Up
// jobs land on the first panel in S3Browser mode. Only the mode is checked,
// not the directory or prefix. Both panels are checked since Copy can run
// from either side.
func (m *Model) destinationSide(job model.Job) panel.Side {
	for _, side := range [2]panel.Side{panel.Left, panel.Right} {
		p := m.panelAt(side)
		if job.Direction == model.Down && p.Mode() == panel.LocalBrowser {
			return side
		}
		if job.Direction == model.Up && p.Mode() == panel.S3Browser {
			return side
		}
	}
	return m.active
}

func (m *Model) destinationRefreshCmd(job model.Job) (panel.Side, tea.Cmd) {
	side := m.destinationSide(job)
	p := m.panelAt(side)
	gen := p.Bump()
	switch p.Mode() {
	case panel.LocalBrowser:
		return side, m.listLocalCmd(side, p.Frame().Path, gen)
	case panel.S3Browser:
		return side, m.listS3Cmd(side, m.gateways[side], p.Frame().Prefix, gen)
	}
	return side, nil
}
