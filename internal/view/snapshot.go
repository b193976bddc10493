// Package view is the View Renderer (spec.md §4.9): a pure projection from
// a Snapshot of application state to a rendered frame string. It never
// reads internal/app's Model directly — Model.View builds a Snapshot and
// hands it over — so the dependency runs one way and view stays trivially
// testable without a real bubbletea program.
package view

import (
	"github.com/eddi888/s3c/internal/model"
	"github.com/eddi888/s3c/internal/panel"
)

// PanelSnapshot is everything Render needs to draw one panel column.
type PanelSnapshot struct {
	Mode     panel.Mode
	Location string // breadcrumb: profile/bucket/prefix or local path
	Entries  []model.Entry
	Cursor   int
	Scroll   int
	Loading  bool
	Banner   string
	Sort     model.SortKey
	Filter   string
	Preview  *PreviewSnapshot // nil unless Mode == panel.Preview and the preview has opened
}

// PreviewSnapshot carries the already-rendered viewport body, since
// wrapping/scrolling is the Preview Engine's job (internal/preview), not
// the renderer's.
type PreviewSnapshot struct {
	Name       string
	Body       string
	ChunkLabel string // e.g. "CHUNK 2/5"
}

// DialogSnapshot describes the open modal, if any.
type DialogSnapshot struct {
	Title       string
	Prompt      string
	Value       string
	Message     string
	IsTextInput bool
}

// JobSnapshot is the foregrounded transfer, if any, shown in the status line.
type JobSnapshot struct {
	Direction model.Direction
	Name      string
	Progress  float64
}

// Snapshot is the full frame state Render projects.
type Snapshot struct {
	Width, Height int
	Active        panel.Side
	Panels        [2]PanelSnapshot
	Dialog        *DialogSnapshot
	Job           *JobSnapshot
}
