package schema

import "fmt"

// Label is a category together with its optional subtype.
type Label struct {
	Category Category `json:"category" yaml:"category"`
	Subtype  Subtype  `json:"subtype,omitempty" yaml:"subtype,omitempty"`
}

// String renders the display form "<Category>" or "<Category> (<Subtype>)".
func (l Label) String() string {
	if l.Subtype == SubtypeNone {
		return string(l.Category)
	}
	return fmt.Sprintf("%s (%s)", l.Category, l.Subtype)
}

// Conforming reports whether the label names an EARS pattern.
func (l Label) Conforming() bool {
	return l.Category != CategoryDoesNotMeet
}

// DoesNotMeet is the label for sentences that match no template.
var DoesNotMeet = Label{Category: CategoryDoesNotMeet}

// Labels returns every display label a verdict can carry, most specific first.
func Labels() []Label {
	return []Label{
		{Category: CategoryComplex, Subtype: SubtypeStateEvent},
		{Category: CategoryComplexUnwanted},
		{Category: CategoryEventDriven, Subtype: SubtypeCompoundEvents},
		{Category: CategoryTemporal},
		{Category: CategoryUnwantedBehavior},
		{Category: CategoryOptionalFeature},
		{Category: CategoryEventDriven},
		{Category: CategoryStateDriven},
		{Category: CategoryUbiquitous},
		DoesNotMeet,
	}
}

// ValidLabel reports whether l belongs to the closed label set.
func ValidLabel(l Label) bool {
	subtypes, ok := validSubtypes[l.Category]
	if !ok {
		return false
	}
	if l.Subtype == SubtypeNone {
		return true
	}
	for _, s := range subtypes {
		if s == l.Subtype {
			return true
		}
	}
	return false
}
