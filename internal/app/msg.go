package app

import (
	"time"

	"github.com/eddi888/s3c/internal/model"
	"github.com/eddi888/s3c/internal/panel"
)

// TickMsg drives banner expiry and progress-bar redraws. Navigation and
// modal key handling is resolved synchronously inside Update via
// internal/input.Translate, so it needs no message type of its own.
type TickMsg time.Time

// Async result messages: every blocking call against C2-C6 returns one of
// these from its tea.Cmd closure. Each carries the generation it was
// issued under so the reducer can discard a late result per spec.md §5.
type (
	ListingLoadedMsg struct {
		Side       panel.Side
		Generation int
		Entries    []model.Entry
		Err        error
	}

	PreviewOpenedMsg struct {
		Side       panel.Side
		Generation int
		Err        error
	}

	PreviewChunkLoadedMsg struct {
		Side       panel.Side
		Generation int
		Jump       PreviewJump
		Err        error
	}

	TransferProgressMsg struct {
		JobID       string
		Transferred int64
	}

	TransferCompletedMsg struct {
		JobID string
		Err   error
	}

	CredentialsResolvedMsg struct {
		Side       panel.Side
		Generation int
		Err        error
	}

	ConfigSavedMsg struct{ Err error }

	ScriptFinishedMsg struct {
		Side       panel.Side
		Generation int
		Err        error
	}
)

// PreviewJump distinguishes a forward scroll fetch from an explicit Home/End
// jump, since the viewport response differs (append vs. replace-and-seek).
type PreviewJump int

const (
	JumpNone PreviewJump = iota
	JumpHome
	JumpEnd
)
