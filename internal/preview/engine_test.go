package preview

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memSource is an in-memory Source for testing the chunk state machine
// without standing up a gateway.
type memSource struct{ data []byte }

func (m memSource) Size(ctx context.Context) (int64, error) { return int64(len(m.data)), nil }

func (m memSource) ReadRange(ctx context.Context, offset, length int64) ([]byte, error) {
	end := offset + length
	if end > int64(len(m.data)) {
		end = int64(len(m.data))
	}
	return m.data[offset:end], nil
}

func TestOpenSmallFileLoadsFullyAndMarksTailLoaded(t *testing.T) {
	data := []byte("hello world")
	e := New(memSource{data})
	require.NoError(t, e.Open(context.Background()))

	assert.True(t, e.HeadLoaded())
	assert.True(t, e.TailLoaded(), "a file smaller than one chunk is fully loaded on Open")
	assert.Equal(t, data, e.HeadBytes())
}

func TestOpenLargeFileLoadsOnlyFirstChunk(t *testing.T) {
	data := bytes.Repeat([]byte("x"), ChunkSize*3)
	e := New(memSource{data})
	require.NoError(t, e.Open(context.Background()))

	assert.True(t, e.HeadLoaded())
	assert.False(t, e.TailLoaded())
	assert.Len(t, e.HeadBytes(), ChunkSize)
}

func TestFetchMoreAppendsNextChunk(t *testing.T) {
	data := bytes.Repeat([]byte("y"), ChunkSize*3)
	e := New(memSource{data})
	require.NoError(t, e.Open(context.Background()))

	require.NoError(t, e.FetchMore(context.Background()))
	assert.Len(t, e.HeadBytes(), ChunkSize*2)
}

func TestEndOnLargeFileLoadsTailWithoutTouchingHead(t *testing.T) {
	data := bytes.Repeat([]byte("z"), ChunkSize*5)
	e := New(memSource{data})
	require.NoError(t, e.Open(context.Background()))

	require.NoError(t, e.End(context.Background()))
	assert.True(t, e.TailLoaded())
	assert.Len(t, e.HeadBytes(), ChunkSize, "End must not load the forward chunks in between")
	assert.Len(t, e.TailBytes(), ChunkSize)
}

func TestEndCollapsesBuffersWhenHeadAndTailMeet(t *testing.T) {
	// Two chunks total: after Open loads chunk 1 and End loads the final
	// chunk, the two buffers exactly cover the whole file and must merge.
	data := bytes.Repeat([]byte("w"), ChunkSize*2)
	e := New(memSource{data})
	require.NoError(t, e.Open(context.Background()))
	require.NoError(t, e.End(context.Background()))

	assert.True(t, e.HeadLoaded())
	assert.True(t, e.TailLoaded())
	assert.Empty(t, e.TailBytes(), "collapsed buffers live entirely in HeadBytes")
	assert.Equal(t, data, e.HeadBytes())
}

func TestHomeIsNoopWhileHeadStillLoaded(t *testing.T) {
	data := bytes.Repeat([]byte("q"), ChunkSize*3)
	e := New(memSource{data})
	require.NoError(t, e.Open(context.Background()))

	require.NoError(t, e.Home(context.Background()))
	assert.Len(t, e.HeadBytes(), ChunkSize, "Home must not reload when head is already loaded")
}

func TestInvalidateThenHomeReloadsFirstChunk(t *testing.T) {
	data := bytes.Repeat([]byte("r"), ChunkSize*3)
	e := New(memSource{data})
	require.NoError(t, e.Open(context.Background()))

	e.Invalidate()
	assert.False(t, e.HeadLoaded())

	require.NoError(t, e.Home(context.Background()))
	assert.True(t, e.HeadLoaded())
	assert.Len(t, e.HeadBytes(), ChunkSize)
}
