// Package render formats classification results for terminals and files.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"earslint/pkg/schema"
)

// Semantic colors for verdict cells.
var (
	Destructive = lipgloss.Color("#e53935") // Red, DOES NOT MEET
	Complex     = lipgloss.Color("#8E24AA") // Purple, complex categories
	Success     = lipgloss.Color("#8BC34A") // Lime green
	Warning     = lipgloss.Color("#FFC107") // Yellow, punctuation issues
	Border      = lipgloss.Color("#2a3850")
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// Table column headers.
var tableHeaders = []string{"Name", "Requirement", "EARS Category", "Quality Check"}

// NoResults is printed instead of an empty table.
const NoResults = "No results to display"

// CategoryColor picks the color of a display label.
func CategoryColor(category string) lipgloss.Color {
	switch {
	case category == string(schema.CategoryDoesNotMeet):
		return Destructive
	case strings.Contains(category, "Complex"):
		return Complex
	default:
		return Success
	}
}

// PunctuationColor picks the color of a punctuation status.
func PunctuationColor(status schema.PunctuationStatus) lipgloss.Color {
	if status == schema.PunctuationIssues {
		return Warning
	}
	return Success
}

// Table writes verdicts as a bordered terminal table. maxWidth wraps the
// requirement column; 0 leaves it unwrapped.
func Table(w io.Writer, verdicts []schema.Verdict, maxWidth int) error {
	if len(verdicts) == 0 {
		_, err := fmt.Fprintln(w, NoResults)
		return err
	}

	rows := make([][]string, len(verdicts))
	for i, v := range verdicts {
		name := v.Name
		if name == "" {
			name = fmt.Sprintf("Requirement %d", i+1)
		}
		rows[i] = []string{name, v.Text, v.Category, qualityCell(v)}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(Border)).
		Headers(tableHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row < 0 || row >= len(verdicts) {
				return cellStyle
			}
			style := cellStyle
			switch col {
			case 1:
				if maxWidth > 0 {
					style = style.Width(maxWidth)
				}
			case 2:
				style = style.Foreground(CategoryColor(verdicts[row].Category))
			case 3:
				style = style.Foreground(PunctuationColor(verdicts[row].Punctuation))
			}
			return style
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// qualityCell shows the punctuation status followed by one bullet per issue.
func qualityCell(v schema.Verdict) string {
	var b strings.Builder
	b.WriteString(string(v.Punctuation))
	for _, issue := range v.Issues {
		b.WriteString("\n• ")
		b.WriteString(string(issue))
	}
	return b.String()
}

// Summary writes the per-label counts of a report.
func Summary(w io.Writer, s schema.Summary) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Total: %d  Conforming: %d  Does not meet: %d  Punctuation issues: %d  Skipped: %d\n",
		s.Total, s.Conforming, s.DoesNotMeet, s.PunctuationIssues, s.Skipped)

	for _, label := range schema.Labels() {
		if n := s.ByCategory[label.String()]; n > 0 {
			style := lipgloss.NewStyle().Foreground(CategoryColor(label.String()))
			fmt.Fprintf(&b, "  %s: %d\n", style.Render(label.String()), n)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
