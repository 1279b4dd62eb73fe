package cmd

import (
	"fmt"
	"strings"

	"github.com/renamekit/renamekit/renamer"
	"github.com/renamekit/renamekit/ui"
)

// conflictDisplayCap limits the entries shown per conflict category;
// the rest collapse into an "and K more" line.
const conflictDisplayCap = 5

// renderPreviews formats preview pairs, capped at limit entries with a
// remainder line for the rest. A limit of zero or less shows all.
func renderPreviews(paths []string, scheme renamer.Scheme, limit int) string {
	previews := renamer.Previews(paths, scheme, limit)

	var out strings.Builder
	for _, p := range previews {
		if p.Original == p.NewName {
			out.WriteString(fmt.Sprintf("  %s (unchanged)\n", p.Original))
			continue
		}
		out.WriteString(fmt.Sprintf("  %s → %s\n", p.Original, ui.SuccessStyle.Render(p.NewName)))
	}
	if remaining := len(paths) - len(previews); remaining > 0 {
		out.WriteString(ui.DimStyle.Render(fmt.Sprintf("  … and %d more files", remaining)))
		out.WriteString("\n")
	}
	return out.String()
}

// renderConflicts formats a conflict report category by category, at
// most conflictDisplayCap entries each.
func renderConflicts(report renamer.ConflictReport) string {
	var out strings.Builder
	writeCategory(&out, "Duplicate target names", report.Duplicates)
	writeCategory(&out, "Illegal characters in target names", report.InvalidChars)
	writeCategory(&out, "Targets that already exist", report.ExistingFiles)
	return out.String()
}

func writeCategory(out *strings.Builder, label string, conflicts []renamer.Conflict) {
	if len(conflicts) == 0 {
		return
	}
	out.WriteString(ui.ErrorStyle.Render(fmt.Sprintf("❌ %s (%d):", label, len(conflicts))))
	out.WriteString("\n")

	shown := conflicts
	if len(shown) > conflictDisplayCap {
		shown = shown[:conflictDisplayCap]
	}
	for _, c := range shown {
		out.WriteString(fmt.Sprintf("  %s → %s\n", c.OriginalPath, c.NewName))
	}
	if remaining := len(conflicts) - len(shown); remaining > 0 {
		out.WriteString(ui.DimStyle.Render(fmt.Sprintf("  … and %d more", remaining)))
		out.WriteString("\n")
	}
}

// renderReport formats the apply outcome: styled summary line plus one
// line per failed entry.
func renderReport(report renamer.ApplyReport) string {
	var out strings.Builder
	switch report.Status {
	case renamer.StatusSuccess:
		out.WriteString(ui.SuccessStyle.Render("✅ " + report.Message))
	case renamer.StatusPartial:
		out.WriteString(ui.InfoStyle.Render("⚠️  " + report.Message))
	default:
		out.WriteString(ui.ErrorStyle.Render("❌ " + report.Message))
	}
	out.WriteString("\n")

	for _, r := range report.Results {
		if r.Success() {
			continue
		}
		out.WriteString(fmt.Sprintf("  %s: %s\n", r.OriginalPath, r.Outcome))
	}
	return out.String()
}
