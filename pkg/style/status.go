package style

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/treesift/pkg/ignore"
)

// Status classifies a checked marker file.
type Status string

const (
	StatusOK      Status = "ok"      // Every line compiled
	StatusProblem Status = "problem" // At least one malformed pattern
)

// StatusStyle returns the appropriate pterm style for a status
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusOK:
		return pterm.NewStyle(pterm.FgGreen)
	case StatusProblem:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// StatusIndicator returns the styled one-character marker for a status.
func StatusIndicator(status Status) string {
	switch status {
	case StatusOK:
		return StatusStyle(StatusOK).Sprint("✓")
	case StatusProblem:
		return StatusStyle(StatusProblem).Sprint("✗")
	default:
		return StatusStyle(status).Sprint("•")
	}
}

// FileStatus classifies one checked marker file.
func FileStatus(file ignore.CheckedFile) Status {
	if file.Bad > 0 {
		return StatusProblem
	}
	return StatusOK
}

// RenderFileLine renders the per-file line of a check report.
func RenderFileLine(file ignore.CheckedFile) string {
	return fmt.Sprintf("  %s %s : %s",
		StatusIndicator(FileStatus(file)),
		PathStyle.Render(file.Path),
		describeCounts(file))
}

// RenderFinding renders one malformed-pattern diagnostic.
func RenderFinding(f ignore.Finding) string {
	return fmt.Sprintf("      line %d: %s : %v",
		f.Line, PatternStyle.Render(fmt.Sprintf("%q", f.Pattern)), f.Err)
}

// RenderCheckReport renders a complete marker-file lint report.
func RenderCheckReport(report *ignore.CheckReport) string {
	var result strings.Builder

	header := fmt.Sprintf("Marker check: %s (marker %q)", report.Root, report.Marker)
	result.WriteString(TitleStyle.Render(header) + "\n\n")

	if len(report.Files) == 0 {
		result.WriteString(MutedStyle.Render("  no marker files found") + "\n")
	}

	findingsByFile := make(map[string][]ignore.Finding)
	for _, f := range report.Findings {
		findingsByFile[f.File] = append(findingsByFile[f.File], f)
	}

	for _, file := range report.Files {
		result.WriteString(RenderFileLine(file) + "\n")
		for _, f := range findingsByFile[file.Path] {
			result.WriteString(RenderFinding(f) + "\n")
		}
	}

	summary := fmt.Sprintf("%d %s checked, %d %s found",
		len(report.Files), plural("file", len(report.Files)),
		len(report.Findings), plural("problem", len(report.Findings)))

	result.WriteString("\n")
	if report.Clean() {
		result.WriteString(SuccessStyle.Render(summary))
	} else {
		result.WriteString(ErrorStyle.Render(summary))
	}

	return result.String()
}

func describeCounts(file ignore.CheckedFile) string {
	counts := fmt.Sprintf("%d %s", file.Rules, plural("rule", file.Rules))
	if file.Bad > 0 {
		counts += fmt.Sprintf(", %d malformed", file.Bad)
	}
	return counts
}

func plural(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
