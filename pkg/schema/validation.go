package schema

import "fmt"

// ValidateVerdict checks the invariants every verdict must satisfy.
func ValidateVerdict(v *Verdict) error {
	if !ValidLabel(v.Label) {
		return fmt.Errorf("invalid label: %q", v.Label.String())
	}
	if v.Category != v.Label.String() {
		return fmt.Errorf("category %q does not match label %q", v.Category, v.Label.String())
	}

	switch v.Punctuation {
	case PunctuationOK:
		if len(v.Issues) != 0 {
			return fmt.Errorf("punctuation OK but %d issues reported", len(v.Issues))
		}
	case PunctuationIssues:
		if len(v.Issues) == 0 {
			return fmt.Errorf("punctuation issues reported without any issue")
		}
	case PunctuationNA:
		if v.Label != DoesNotMeet {
			return fmt.Errorf("row without text must not meet, got %q", v.Category)
		}
		if len(v.Issues) != 0 {
			return fmt.Errorf("row without text must have no issues")
		}
	default:
		return fmt.Errorf("invalid punctuation status: %s", v.Punctuation)
	}

	for _, issue := range v.Issues {
		switch issue {
		case IssueMissingEndPunctuation, IssueRepeatedPunctuation, IssueMissingIntroClauseComma,
			IssueRepeatedSpaces, IssueMalformedShall:
			// Valid
		default:
			return fmt.Errorf("unknown issue: %s", issue)
		}
	}

	return nil
}
