package preview

import (
	"context"

	"github.com/eddi888/s3c/internal/s3cerr"
)

// ChunkSize is spec.md §4.5's "the first/next/final chunk of 100 KiB."
const ChunkSize = 100 * 1024

// Engine implements spec.md §4.5's state machine over an arbitrary Source: a
// forward-growing head buffer from offset 0, and a tail buffer loaded only
// once the user presses End, collapsing into one contiguous buffer the
// moment the two meet or overlap.
//
// A preview is read-only; if the underlying entry is deleted mid-view the
// next ReadRange call returns a NotFound error (s3cerr.NotFound), which the
// caller surfaces as a transient banner per spec.md §4.5 and then calls
// Invalidate.
type Engine struct {
	source Source

	totalSize int64

	headBuf []byte
	tailBuf []byte
	tailStart int64

	headLoaded bool
	tailLoaded bool
}

// New returns an unopened Engine over source.
func New(source Source) *Engine {
	return &Engine{source: source}
}

// Open performs the initial head(source) + first-chunk load described in
// spec.md §4.5.
func (e *Engine) Open(ctx context.Context) error {
	size, err := e.source.Size(ctx)
	if err != nil {
		return err
	}
	e.totalSize = size

	first := min(ChunkSize, size)
	buf, err := e.source.ReadRange(ctx, 0, first)
	if err != nil {
		return err
	}

	e.headBuf = buf
	e.headLoaded = true
	e.tailLoaded = size <= ChunkSize
	return nil
}

// TotalSize reports the size discovered at Open.
func (e *Engine) TotalSize() int64 { return e.totalSize }

// HeadLoaded reports whether the head buffer is populated.
func (e *Engine) HeadLoaded() bool { return e.headLoaded }

// TailLoaded reports whether the tail buffer (or, once collapsed, the whole
// file) has been loaded.
func (e *Engine) TailLoaded() bool { return e.tailLoaded }

// HeadBytes returns the bytes loaded from the start of the file. Once the
// buffers have collapsed (see checkCollapse) this is the entire file.
func (e *Engine) HeadBytes() []byte { return e.headBuf }

// TailBytes returns the bytes loaded from the end of the file, empty until
// End has been pressed (or after collapse, where the tail lives in
// HeadBytes instead).
func (e *Engine) TailBytes() []byte { return e.tailBuf }

// frontier is how far forward the head buffer is allowed to grow before it
// would run into bytes already reserved for the tail buffer.
func (e *Engine) frontier() int64 {
	if e.tailLoaded && e.tailStart > 0 {
		return e.tailStart
	}
	return e.totalSize
}

// FetchMore loads the next chunk forward of whatever is currently in the
// head buffer, per spec.md §4.5's "scroll down past the last loaded byte:
// fetch next 100 KiB forward; append." It is a no-op once the head buffer
// has reached the frontier (the tail buffer, or EOF).
func (e *Engine) FetchMore(ctx context.Context) error {
	offset := int64(len(e.headBuf))
	frontier := e.frontier()
	if offset >= frontier {
		return nil
	}

	length := min(ChunkSize, frontier-offset)
	buf, err := e.source.ReadRange(ctx, offset, length)
	if err != nil {
		return err
	}
	e.headBuf = append(e.headBuf, buf...)
	e.checkCollapse()
	return nil
}

// Home implements spec.md §4.5's Home semantics: if the head buffer is
// already loaded (the normal case, true from Open onward) it stays as is —
// the caller just scrolls its viewport to the top. Only after Invalidate
// clears it does Home need to reload the first chunk.
func (e *Engine) Home(ctx context.Context) error {
	if e.headLoaded {
		return nil
	}
	first := min(ChunkSize, e.totalSize)
	buf, err := e.source.ReadRange(ctx, 0, first)
	if err != nil {
		return err
	}
	e.headBuf = buf
	e.headLoaded = true
	return nil
}

// End implements spec.md §4.5's End semantics: if the tail is already
// loaded, this is a no-op (the caller seeks its viewport to the bottom);
// otherwise it fetches the final chunk and collapses the buffers if they
// now touch or overlap.
func (e *Engine) End(ctx context.Context) error {
	if e.tailLoaded {
		return nil
	}

	length := min(ChunkSize, e.totalSize)
	offset := e.totalSize - length
	buf, err := e.source.ReadRange(ctx, offset, length)
	if err != nil {
		return err
	}
	e.tailBuf = buf
	e.tailStart = offset
	e.tailLoaded = true
	e.checkCollapse()
	return nil
}

// checkCollapse merges the head and tail buffers into a single contiguous
// HeadBytes once they touch or overlap, per spec.md §4.5's "If head and
// tail now touch or overlap, collapse into a single contiguous chunk and
// set both flags."
func (e *Engine) checkCollapse() {
	if !e.headLoaded || !e.tailLoaded || e.tailBuf == nil {
		return
	}
	headLen := int64(len(e.headBuf))
	if headLen < e.tailStart {
		return // a gap remains; nothing to merge yet
	}

	overlap := headLen - e.tailStart
	if overlap < int64(len(e.tailBuf)) {
		e.headBuf = append(e.headBuf, e.tailBuf[overlap:]...)
	}
	e.tailBuf = nil
	e.tailStart = 0
}

// Invalidate drops all loaded state, the response to discovering mid-view
// that the previewed entry no longer exists (spec.md §4.5). The next Open
// (or Home, if already open) will surface the NotFound error again.
func (e *Engine) Invalidate() {
	e.headBuf = nil
	e.tailBuf = nil
	e.tailStart = 0
	e.headLoaded = false
	e.tailLoaded = false
}

// IsNotFound reports whether err is the NotFound the entry's disappearance
// produces, the trigger spec.md §4.5 names for the transient banner.
func IsNotFound(err error) bool {
	return s3cerr.Of(err) == s3cerr.NotFound
}
