// Package app is the Message Loop (spec.md §4.8): the central reducer that
// consumes input and async-result messages, updates panel/modal/transfer
// state, and spawns follow-up tasks. Implemented as a
// charmbracelet/bubbletea tea.Model, the architecture already present in
// the teacher's dependency graph (main.go calls tui.Run(), backed by
// bubbletea/bubbles/lipgloss) — Update is the reducer, View is the View
// Renderer (C9, internal/view), and tea.Cmd values are the Commands the
// reducer emits.
package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/logr"

	"github.com/eddi888/s3c/internal/config"
	"github.com/eddi888/s3c/internal/creds"
	"github.com/eddi888/s3c/internal/fsgw"
	"github.com/eddi888/s3c/internal/logging"
	"github.com/eddi888/s3c/internal/model"
	"github.com/eddi888/s3c/internal/panel"
	"github.com/eddi888/s3c/internal/preview"
	"github.com/eddi888/s3c/internal/s3gw"
	"github.com/eddi888/s3c/internal/transfer"
)

// bannerTTL is spec.md §7's "banners are ephemeral ... or after 5s."
const bannerTTL = 5 * time.Second

// Model is the application kernel's full state: two independent Panel
// Models, the shared Config/Resolver/gateways, at most one open modal, and
// in-flight transfer jobs. It implements tea.Model.
type Model struct {
	ctx context.Context

	homeDir  string
	store    *config.Store
	cfg      model.Config
	resolver *creds.Resolver
	fs       *fsgw.Gateway
	transfer *transfer.Manager
	logger   logr.Logger
	logRing  *logging.Ring

	panels [2]*panel.State
	active panel.Side

	// gateways[side] is the resolved S3 client for whichever bucket side is
	// currently browsing, nil unless side.Mode() == panel.S3Browser.
	gateways        [2]*s3gw.Gateway
	resolvedProfile [2]string
	resolvedBucket  [2]string

	// pendingProfile/pendingBucket carry the bucket a side is resolving
	// credentials for across the setup-script and Resolve steps, since both
	// run as separate messages (spec.md §9's "coroutine-style navigation").
	pendingProfile [2]string
	pendingBucket  [2]model.Bucket

	bannerAt [2]time.Time

	previews [2]*previewState

	dlg *modal

	jobs          map[string]model.Job
	foregroundJob string

	width, height int
	quitting      bool
	quitConfirm   bool
}

// previewState holds the engine + viewport for a panel currently in
// preview.Mode, plus what it's previewing, so a TransferCompleted refresh
// or a background Delete can invalidate it.
type previewState struct {
	engine *preview.Engine
	view   *preview.View
	name   string
}

// newPreviewState builds a previewState over source, with a placeholder
// viewport size — the next tea.WindowSizeMsg resizes it to the panel's
// actual on-screen dimensions.
func newPreviewState(source preview.Source, name string) *previewState {
	return &previewState{
		engine: preview.New(source),
		view:   preview.NewView(40, 20),
		name:   name,
	}
}

// New builds the initial Model: both panels rooted at ModeSelect, the
// config loaded via store, ready to run.
func New(ctx context.Context, homeDir string, store *config.Store, cfg model.Config, resolver *creds.Resolver, logger logr.Logger, logRing *logging.Ring) *Model {
	m := &Model{
		ctx:      ctx,
		homeDir:  homeDir,
		store:    store,
		cfg:      cfg,
		resolver: resolver,
		fs:       fsgw.New(),
		transfer: transfer.NewManager(transfer.DefaultConcurrency),
		logger:   logger,
		logRing:  logRing,
		panels:   [2]*panel.State{panel.New(panel.Left), panel.New(panel.Right)},
		active:   panel.Left,
		jobs:     make(map[string]model.Job),
	}
	for _, p := range m.panels {
		p.SetListing(modeSelectEntries(), p.Generation())
	}
	return m
}

// Init kicks off the startup commands: both panels begin at ModeSelect, so
// there is nothing to load yet but the tick clock and the transfer-event
// pump (spec.md §4.6's progress/completion messages).
func (m *Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), m.waitTransferEventCmd())
}

func tickCmd() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// panelAt returns the panel.State for side.
func (m *Model) panelAt(side panel.Side) *panel.State { return m.panels[side] }

// activePanel returns the currently focused panel.
func (m *Model) activePanel() *panel.State { return m.panels[m.active] }

// inactiveSide returns the side opposite m.active, the Copy (F5) target per
// spec.md §4.7.
func (m *Model) inactiveSide() panel.Side {
	if m.active == panel.Left {
		return panel.Right
	}
	return panel.Left
}

// setBanner records a transient message on side's panel, per spec.md §7.
func (m *Model) setBanner(side panel.Side, msg string) {
	m.panels[side].Banner = msg
	m.bannerAt[side] = time.Now()
}

// expireBanners clears any banner older than bannerTTL.
func (m *Model) expireBanners(now time.Time) {
	for i := range m.panels {
		if m.panels[i].Banner != "" && now.Sub(m.bannerAt[i]) > bannerTTL {
			m.panels[i].Banner = ""
		}
	}
}
