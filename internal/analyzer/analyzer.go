// Package analyzer classifies requirement sentences into EARS categories and
// lints their punctuation. Everything here is a pure function of one sentence.
package analyzer

import (
	"strings"

	"earslint/pkg/schema"
)

// Classifier maps a trimmed sentence to exactly one label.
type Classifier interface {
	Classify(text string) schema.Label
}

// StyleChecker reports punctuation defects in a trimmed sentence.
type StyleChecker interface {
	Check(text string) (schema.PunctuationStatus, []schema.Issue)
}

// Analyzer merges classification and style checking into one verdict.
type Analyzer struct {
	classifier Classifier
	checker    StyleChecker
}

// New creates an analyzer backed by the EARS template table and style rules.
func New() *Analyzer {
	return NewWith(TemplateClassifier{}, RuleChecker{})
}

// NewWith creates an analyzer with custom components (for testing).
func NewWith(classifier Classifier, checker StyleChecker) *Analyzer {
	return &Analyzer{
		classifier: classifier,
		checker:    checker,
	}
}

// Analyze classifies and style-checks the trimmed text.
func (a *Analyzer) Analyze(name, text string) schema.Verdict {
	trimmed := strings.TrimSpace(text)
	label := a.classifier.Classify(trimmed)
	status, issues := a.checker.Check(trimmed)
	return schema.NewVerdict(name, trimmed, label, status, issues)
}

// AnalyzeRow analyzes a tabular row. Rows with missing or empty text skip
// both components and get the DOES NOT MEET / N/A sentinel.
func (a *Analyzer) AnalyzeRow(row schema.Row) schema.Verdict {
	if row.Text == nil || *row.Text == "" {
		return Unreadable(row.Name)
	}
	return a.Analyze(row.Name, *row.Text)
}

// Unreadable returns the sentinel verdict for a row without usable text.
func Unreadable(name string) schema.Verdict {
	return schema.NewVerdict(name, schema.InvalidRequirementText, schema.DoesNotMeet, schema.PunctuationNA, nil)
}

var defaultAnalyzer = New()

// Classify returns the EARS label of a trimmed sentence.
func Classify(text string) schema.Label {
	return defaultAnalyzer.classifier.Classify(text)
}

// CheckStyle returns the punctuation status and issues of a trimmed sentence.
func CheckStyle(text string) (schema.PunctuationStatus, []schema.Issue) {
	return defaultAnalyzer.checker.Check(text)
}

// Analyze runs the default analyzer.
func Analyze(name, text string) schema.Verdict {
	return defaultAnalyzer.Analyze(name, text)
}

// AnalyzeRow runs the default analyzer on a row.
func AnalyzeRow(row schema.Row) schema.Verdict {
	return defaultAnalyzer.AnalyzeRow(row)
}
