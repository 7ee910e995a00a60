package analyzer

import (
	"regexp"

	"earslint/pkg/schema"
)

var (
	endPunctuation      = regexp.MustCompile(`[.?!]$`)
	repeatedPunctuation = regexp.MustCompile(`[.,?!]{2,}`)
	introClause         = regexp.MustCompile(`^(while|when|if|where|after)\s+.+`)
	introClauseComma    = regexp.MustCompile(`^(while|when|if|where|after)\s+.+?,`)
	repeatedSpaces      = regexp.MustCompile(`\s{2,}`)
	shallKeyword        = regexp.MustCompile(`\sshall\s`)
)

// styleRule reports issue when violated returns true.
type styleRule struct {
	issue    schema.Issue
	violated func(text string) bool
}

// styleRules are all evaluated; the issue order follows this list.
var styleRules = []styleRule{
	{schema.IssueMissingEndPunctuation, func(s string) bool { return !endPunctuation.MatchString(s) }},
	{schema.IssueRepeatedPunctuation, repeatedPunctuation.MatchString},
	{schema.IssueMissingIntroClauseComma, func(s string) bool {
		return introClause.MatchString(s) && !introClauseComma.MatchString(s)
	}},
	{schema.IssueRepeatedSpaces, repeatedSpaces.MatchString},
	{schema.IssueMalformedShall, func(s string) bool { return !shallKeyword.MatchString(s) }},
}

// RuleChecker runs the punctuation and keyword rules over a sentence.
type RuleChecker struct{}

// Check returns the punctuation status and the issues found, in rule order.
func (RuleChecker) Check(text string) (schema.PunctuationStatus, []schema.Issue) {
	issues := []schema.Issue{}
	for _, r := range styleRules {
		if r.violated(text) {
			issues = append(issues, r.issue)
		}
	}

	if len(issues) > 0 {
		return schema.PunctuationIssues, issues
	}
	return schema.PunctuationOK, issues
}
