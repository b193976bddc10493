package transfer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eddi888/s3c/internal/model"
	"github.com/eddi888/s3c/internal/s3cerr"
)

func waitEvent(t *testing.T, events <-chan Event) Event {
	t.Helper()
	select {
	case e := <-events:
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for transfer event")
		return Event{}
	}
}

func TestSubmitReportsCompletionOnSuccess(t *testing.T) {
	m := NewManager(2)
	job := model.Job{ID: NewJobID(), TotalBytes: 10}

	m.Submit(context.Background(), job, func(ctx context.Context, progress func(int64)) error {
		progress(10)
		return nil
	}, nil)

	progressEvt := waitEvent(t, m.Events())
	assert.Equal(t, job.ID, progressEvt.JobID)
	assert.Equal(t, int64(10), progressEvt.Transferred)

	doneEvt := waitEvent(t, m.Events())
	assert.True(t, doneEvt.Done)
	assert.NoError(t, doneEvt.Err)
}

func TestSubmitReportsFailure(t *testing.T) {
	m := NewManager(2)
	job := model.Job{ID: NewJobID()}
	wantErr := s3cerr.New(s3cerr.NotFound, nil, "missing")

	m.Submit(context.Background(), job, func(ctx context.Context, progress func(int64)) error {
		return wantErr
	}, nil)

	evt := waitEvent(t, m.Events())
	assert.True(t, evt.Done)
	require.Error(t, evt.Err)
	assert.Equal(t, s3cerr.NotFound, s3cerr.Of(evt.Err))
}

func TestCancelStopsJobAndRunsCleanup(t *testing.T) {
	m := NewManager(2)
	job := model.Job{ID: NewJobID()}

	started := make(chan struct{})
	cleaned := make(chan struct{})

	m.Submit(context.Background(), job, func(ctx context.Context, progress func(int64)) error {
		close(started)
		<-ctx.Done()
		return ctx.Err()
	}, func() {
		close(cleaned)
	})

	<-started
	m.Cancel(job.ID)

	evt := waitEvent(t, m.Events())
	assert.True(t, evt.Done)
	assert.Equal(t, s3cerr.Canceled, s3cerr.Of(evt.Err))

	select {
	case <-cleaned:
	case <-time.After(time.Second):
		t.Fatal("cleanup was not invoked after cancellation")
	}
}

func TestCancelOnUnknownJobIDIsNoop(t *testing.T) {
	m := NewManager(1)
	assert.NotPanics(t, func() { m.Cancel("no-such-job") })
}

func TestProgressIsCoalesced(t *testing.T) {
	m := NewManager(1)
	job := model.Job{ID: NewJobID()}

	m.Submit(context.Background(), job, func(ctx context.Context, progress func(int64)) error {
		for i := int64(1); i <= 5; i++ {
			progress(i)
		}
		return nil
	}, nil)

	var transferredSeen []int64
	for {
		evt := waitEvent(t, m.Events())
		if evt.Done {
			break
		}
		transferredSeen = append(transferredSeen, evt.Transferred)
	}

	assert.Less(t, len(transferredSeen), 5, "five rapid progress calls must coalesce to fewer than five events")
}

func TestWaitBlocksUntilAllJobsFinish(t *testing.T) {
	m := NewManager(2)
	job := model.Job{ID: NewJobID()}

	m.Submit(context.Background(), job, func(ctx context.Context, progress func(int64)) error {
		return errors.New("boom")
	}, nil)

	m.Wait()
	evt := waitEvent(t, m.Events())
	assert.True(t, evt.Done)
}
