package preview

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
)

// View renders an Engine's currently loaded bytes into a
// charmbracelet/bubbles/viewport.Model, the scrollable region named in
// SPEC_FULL.md §4.5. Visual line numbers are in wrapped-line units, so
// End on a one-line multi-megabyte file lands on the last wrapped row.
type View struct {
	viewport.Model
	wrapWidth int
}

// NewView builds a View sized width x height, wrapping content at width
// (the panel width, per spec.md §4.5).
func NewView(width, height int) *View {
	return &View{Model: viewport.New(width, height), wrapWidth: width}
}

// SetSize resizes the viewport and sets the wrap width; content already
// shown is re-wrapped at that width on the next ShowHead or ShowEnd.
func (v *View) SetSize(width, height int) {
	v.Model.Width, v.Model.Height = width, height
	v.wrapWidth = width
}

// ShowHead renders e's head buffer (the normal scrolling view).
func (v *View) ShowHead(e *Engine) {
	lines := WrapLines(e.HeadBytes(), v.wrapWidth)
	v.SetContent(strings.Join(lines, "\n"))
}

// ShowEnd renders e's tail buffer and jumps the viewport to its bottom, the
// deterministic end-jump spec.md §4.5 requires. If the buffers have already
// collapsed, the tail lives in the head buffer and this is equivalent to
// ShowHead followed by GotoBottom.
func (v *View) ShowEnd(e *Engine) {
	if len(e.TailBytes()) == 0 {
		v.ShowHead(e)
		v.GotoBottom()
		return
	}
	lines := WrapLines(e.TailBytes(), v.wrapWidth)
	v.SetContent(strings.Join(lines, "\n"))
	v.GotoBottom()
}
