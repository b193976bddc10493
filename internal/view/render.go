package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/eddi888/s3c/internal/model"
	"github.com/eddi888/s3c/internal/panel"
)

var (
	titleStyle       = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	activeHeaderStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	headerStyle      = lipgloss.NewStyle().Bold(true)
	selectedStyle    = lipgloss.NewStyle().Reverse(true)
	bannerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	footerKeyStyle   = lipgloss.NewStyle().Bold(true)
	modalStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

// Render projects s into the full frame: title bar, two panel columns, a
// transient status line, an optional modal overlay, and the F-key footer
// (spec.md §4.9).
func Render(s Snapshot) string {
	colWidth := s.Width / 2
	if colWidth < 10 {
		colWidth = 10
	}
	rows := s.Height - 3
	if rows < 1 {
		rows = 1
	}

	left := renderPanel(s.Panels[panel.Left], s.Active == panel.Left, colWidth, rows)
	right := renderPanel(s.Panels[panel.Right], s.Active == panel.Right, colWidth, rows)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	title := titleStyle.Render(currentLocation(s.Panels[s.Active]))
	status := renderStatus(s)
	footer := renderFooter(s.Panels[s.Active].Mode,
		s.Panels[panel.Left].Mode == panel.S3Browser && s.Panels[panel.Right].Mode == panel.S3Browser)

	frame := lipgloss.JoinVertical(lipgloss.Left, title, body, status, footer)
	if s.Dialog != nil {
		return overlayModal(frame, s.Dialog)
	}
	return frame
}

func currentLocation(p PanelSnapshot) string {
	if p.Location == "" {
		return "s3c"
	}
	return p.Location
}

func renderStatus(s Snapshot) string {
	var parts []string
	for _, p := range s.Panels {
		if p.Banner != "" {
			parts = append(parts, bannerStyle.Render(p.Banner))
		}
	}
	if s.Job != nil {
		parts = append(parts, fmt.Sprintf("%s %s %d%%", s.Job.Direction, s.Job.Name, int(s.Job.Progress*100)))
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "  |  ")
}

func renderPanel(p PanelSnapshot, active bool, width, rows int) string {
	hs := headerStyle
	if active {
		hs = activeHeaderStyle
	}
	header := hs.Width(width).Render(fmt.Sprintf("%-*s %8s %s", width-20, "Name", "Size", "Modified"))

	var body string
	if p.Mode == panel.Preview && p.Preview != nil {
		body = p.Preview.Body
	} else {
		body = renderEntries(p, width, rows)
	}

	col := lipgloss.JoinVertical(lipgloss.Left, header, body)
	return lipgloss.NewStyle().Width(width).Height(rows + 1).Render(col)
}

func renderEntries(p PanelSnapshot, width, rows int) string {
	if p.Loading {
		return "loading…"
	}
	if len(p.Entries) == 0 {
		return "(empty)"
	}

	nameWidth := width - 20
	if nameWidth < 4 {
		nameWidth = 4
	}

	var lines []string
	for i, e := range p.Entries {
		if i >= rows {
			break
		}
		line := fmt.Sprintf("%-*s %8s %s", nameWidth, truncateName(entryGlyph(e), nameWidth), humanSize(e.Size), mtimeLabel(e))
		if i == p.Cursor {
			line = selectedStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func mtimeLabel(e model.Entry) string {
	if !e.HasMTime {
		return ""
	}
	return e.MTime.Format("2006-01-02 15:04")
}

func overlayModal(frame string, d *DialogSnapshot) string {
	var body strings.Builder
	if d.Title != "" {
		body.WriteString(titleStyle.Render(d.Title))
		body.WriteString("\n")
	}
	if d.Prompt != "" {
		body.WriteString(d.Prompt)
		body.WriteString("\n")
	}
	if d.IsTextInput {
		body.WriteString(d.Value)
	} else if d.Message != "" {
		rendered, err := glamour.Render(d.Message, "dark")
		if err != nil {
			rendered = d.Message
		}
		body.WriteString(rendered)
	}
	modal := modalStyle.Render(body.String())
	return lipgloss.JoinVertical(lipgloss.Center, frame, modal)
}
