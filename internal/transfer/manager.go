// Package transfer is the Transfer Manager (spec.md §4.6): job submission
// onto a bounded worker pool, progress coalescing, and cooperative
// cancellation. Grounded on the teacher's pkg/sources/s3/s3.go, which runs
// its per-object scan tasks on a `jobPool *errgroup.Group` sized by
// `SetLimit(concurrency)` — the same shape, generalized here from "scan an
// object" to "move bytes between a Source and a Filesystem Gateway."
package transfer

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/eddi888/s3c/internal/model"
	"github.com/eddi888/s3c/internal/s3cerr"
)

// DefaultConcurrency is spec.md §4.6's "bounded worker pool (default 4)."
const DefaultConcurrency = 4

// coalesceInterval is spec.md §4.6's "at most 20 times per second", i.e.
// no more than one progress Event per 50ms per job.
const coalesceInterval = 50 * time.Millisecond

// Execute performs one job's byte transfer, invoking progress as bytes move.
// Callers build this from s3gw/fsgw Put/Download/Write/ReadRange calls; the
// Manager only owns scheduling, coalescing, and cancellation.
type Execute func(ctx context.Context, progress func(transferred int64)) error

// Cleanup best-effort removes a job's partial destination artifact after a
// cancellation, per spec.md §4.6's "deletes partial destination artifacts
// best-effort." It is never called for other failure modes, since those
// may be retried against a partially-written destination.
type Cleanup func()

// Event is one progress or completion notification from a running job. The
// caller (the Message Loop, C8) turns these into tea.Msg values.
type Event struct {
	JobID       string
	Transferred int64
	Done        bool
	Err         error // set only when Done and the job did not succeed
}

// Manager runs Jobs on a bounded worker pool and reports their progress and
// completion on a single Events channel.
type Manager struct {
	pool *errgroup.Group

	mu      sync.Mutex
	cancels map[string]context.CancelFunc

	events chan Event
}

// NewManager returns a Manager whose worker pool admits at most concurrency
// simultaneous jobs.
func NewManager(concurrency int) *Manager {
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}
	pool := &errgroup.Group{}
	pool.SetLimit(concurrency)

	return &Manager{
		pool:    pool,
		cancels: make(map[string]context.CancelFunc),
		events:  make(chan Event, 64),
	}
}

// Events returns the channel every job's progress and completion is
// reported on.
func (m *Manager) Events() <-chan Event { return m.events }

// NewJobID mints a job identifier, per spec.md's Job type carrying an ID.
func NewJobID() string { return uuid.NewString() }

// Submit enqueues job and starts it immediately once a worker slot is free
// (spec.md §4.6: "enqueues and immediately starts the job on a bounded
// worker pool"). exec performs the actual transfer; cleanup, if non-nil, is
// invoked only if the job is canceled before exec returns.
func (m *Manager) Submit(ctx context.Context, job model.Job, exec Execute, cleanup Cleanup) {
	jobCtx, cancel := context.WithCancel(ctx)

	m.mu.Lock()
	m.cancels[job.ID] = cancel
	m.mu.Unlock()

	m.pool.Go(func() error {
		defer func() {
			m.mu.Lock()
			delete(m.cancels, job.ID)
			m.mu.Unlock()
		}()

		var lastEmit time.Time
		progress := func(transferred int64) {
			if !lastEmit.IsZero() && time.Since(lastEmit) < coalesceInterval {
				return
			}
			lastEmit = time.Now()
			m.events <- Event{JobID: job.ID, Transferred: transferred}
		}

		err := exec(jobCtx, progress)
		if err == nil {
			m.events <- Event{JobID: job.ID, Done: true}
			return nil
		}

		if errors.Is(jobCtx.Err(), context.Canceled) {
			if cleanup != nil {
				cleanup()
			}
			m.events <- Event{JobID: job.ID, Done: true, Err: s3cerr.New(s3cerr.Canceled, err, "transfer canceled")}
			return nil
		}

		m.events <- Event{JobID: job.ID, Done: true, Err: err}
		return nil
	})
}

// Cancel requests cancellation of jobID. The running task observes it at
// its next chunk boundary (the next progress callback or blocking I/O
// call), per spec.md §4.6.
func (m *Manager) Cancel(jobID string) {
	m.mu.Lock()
	cancel, ok := m.cancels[jobID]
	m.mu.Unlock()
	if ok {
		cancel()
	}
}

// Wait blocks until every submitted job has finished, used on shutdown.
func (m *Manager) Wait() { _ = m.pool.Wait() }
