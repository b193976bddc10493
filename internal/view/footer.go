package view

import (
	"strings"

	"github.com/eddi888/s3c/internal/panel"
)

// fkeyLabels is spec.md §6's mode-dependent footer table, keyed by mode;
// "" means the slot is blank for that mode.
var fkeyLabels = map[panel.Mode][10]string{
	panel.ProfileList:  {"Help", "Sort", "Edit", "Filter", "", "", "", "", "Advanced", "Quit"},
	panel.BucketList:   {"Help", "Sort", "Edit", "Filter", "", "", "Create", "Delete", "Advanced", "Quit"},
	panel.S3Browser:    {"Help", "Sort", "View", "Filter", "Copy", "Rename", "Mkdir", "Delete", "Advanced", "Quit"},
	panel.LocalRoots:   {"Help", "Sort", "View", "Filter", "Copy", "Rename", "Mkdir", "Delete", "Advanced", "Quit"},
	panel.LocalBrowser: {"Help", "Sort", "View", "Filter", "Copy", "Rename", "Mkdir", "Delete", "Advanced", "Quit"},
	panel.Preview:      {"Help", "", "", "", "", "", "", "", "", "Quit"},
	panel.ModeSelect:   {"Help", "", "", "", "", "", "", "", "", "Quit"},
}

// renderFooter builds the ten-slot F-key label line for mode; copyBlank
// leaves the F5 slot blank (both panels are S3Browser, where Copy does
// nothing).
func renderFooter(mode panel.Mode, copyBlank bool) string {
	labels, ok := fkeyLabels[mode]
	if !ok {
		labels = fkeyLabels[panel.ModeSelect]
	}
	parts := make([]string, 0, 10)
	for i, label := range labels {
		if label == "" || (copyBlank && i == 4) {
			continue
		}
		parts = append(parts, footerKeyStyle.Render(fkeyName(i))+" "+label)
	}
	return strings.Join(parts, "  ")
}

func fkeyName(i int) string {
	names := [10]string{"F1", "F2", "F3", "F4", "F5", "F6", "F7", "F8", "F9", "F10"}
	return names[i]
}
