package schema

// Row is one requirement extracted from a tabular source.
// A nil Text means the cell was missing or not textual.
type Row struct {
	Name string
	Text *string
}

// TextRow builds a row carrying text.
func TextRow(name, text string) Row {
	return Row{Name: name, Text: &text}
}

// Verdict is the combined classification and style result for one requirement.
type Verdict struct {
	Name        string            `json:"name" yaml:"name"`
	Text        string            `json:"text" yaml:"text"`
	Label       Label             `json:"-" yaml:"-"`
	Category    string            `json:"category" yaml:"category"` // Display label
	Punctuation PunctuationStatus `json:"punctuation" yaml:"punctuation"`
	Issues      []Issue           `json:"issues" yaml:"issues"`
}

// NewVerdict assembles a verdict. A nil issues slice is stored as empty.
func NewVerdict(name, text string, label Label, status PunctuationStatus, issues []Issue) Verdict {
	if issues == nil {
		issues = []Issue{}
	}
	return Verdict{
		Name:        name,
		Text:        text,
		Label:       label,
		Category:    label.String(),
		Punctuation: status,
		Issues:      issues,
	}
}
