package schema

import (
	"fmt"
	"time"
)

// Report is the result of classifying one tabular source.
type Report struct {
	ID          string    `json:"id" yaml:"id"`
	Source      string    `json:"source" yaml:"source"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	Summary     Summary   `json:"summary" yaml:"summary"`
	Verdicts    []Verdict `json:"verdicts" yaml:"verdicts"`
}

// Summary aggregates a report's verdicts.
type Summary struct {
	Total             int            `json:"total" yaml:"total"`
	Conforming        int            `json:"conforming" yaml:"conforming"`
	DoesNotMeet       int            `json:"does_not_meet" yaml:"does_not_meet"`
	PunctuationIssues int            `json:"punctuation_issues" yaml:"punctuation_issues"`
	Skipped           int            `json:"skipped" yaml:"skipped"` // Rows without text
	ByCategory        map[string]int `json:"by_category" yaml:"by_category"`
}

// NewReport validates every verdict and wraps them in a report with a fresh ID.
func NewReport(source string, verdicts []Verdict) (*Report, error) {
	for i := range verdicts {
		if err := ValidateVerdict(&verdicts[i]); err != nil {
			return nil, fmt.Errorf("verdict %d (%s): %w", i, verdicts[i].Name, err)
		}
	}

	id, err := NewReportID()
	if err != nil {
		return nil, fmt.Errorf("generate report ID: %w", err)
	}

	return &Report{
		ID:          id,
		Source:      source,
		GeneratedAt: time.Now().UTC(),
		Summary:     Summarize(verdicts),
		Verdicts:    verdicts,
	}, nil
}

// Summarize counts verdicts by outcome.
func Summarize(verdicts []Verdict) Summary {
	s := Summary{
		Total:      len(verdicts),
		ByCategory: make(map[string]int),
	}
	for _, v := range verdicts {
		s.ByCategory[v.Category]++
		if v.Label.Conforming() {
			s.Conforming++
		} else {
			s.DoesNotMeet++
		}
		switch v.Punctuation {
		case PunctuationIssues:
			s.PunctuationIssues++
		case PunctuationNA:
			s.Skipped++
		}
	}
	return s
}
