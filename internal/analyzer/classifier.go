package analyzer

import (
	"regexp"

	"earslint/pkg/schema"
)

// Shared clause fragments.
const (
	// systemName matches "the <system name>" non-greedily.
	systemName = `the\s+[\w\s'’(),]+?`

	// systemShall matches "shall <system response>" to the end of the line.
	systemShall = `shall\s+.+$`
)

// template is one EARS grammar rule. Its rank is its position in templates.
type template struct {
	name    string
	pattern *regexp.Regexp
	label   schema.Label
}

// newTemplate anchors a leading-clause pattern and appends the mandatory
// "the <system> shall <response>" tail.
func newTemplate(name, leading string, label schema.Label) template {
	return template{
		name:    name,
		pattern: regexp.MustCompile(`(?i)^` + leading + systemName + `\s+` + systemShall),
		label:   label,
	}
}

// templates is evaluated top to bottom and the first match wins. Several
// shapes nest inside broader ones, so the most specific must come first.
var templates = []template{
	newTemplate("complex-state-event",
		`when\s+.+?\s+while\s+.+?,\s*`,
		schema.Label{Category: schema.CategoryComplex, Subtype: schema.SubtypeStateEvent}),
	newTemplate("complex",
		`while\s+.+?,\s*when\s+.+?,\s*`,
		schema.Label{Category: schema.CategoryComplex, Subtype: schema.SubtypeStateEvent}),
	newTemplate("complex-unwanted",
		`if\s+.+?,\s*then\s+(?:while\s+.+?,\s*)?(?:when\s+.+?,\s*)?`,
		schema.Label{Category: schema.CategoryComplexUnwanted}),
	newTemplate("compound-events",
		`when\s+.+?\s+and\s+.+?,\s*`,
		schema.Label{Category: schema.CategoryEventDriven, Subtype: schema.SubtypeCompoundEvents}),
	newTemplate("temporal",
		`after\s+.+?,\s*`,
		schema.Label{Category: schema.CategoryTemporal}),
	newTemplate("unwanted-behavior",
		`if\s+.+?,\s*then\s+`,
		schema.Label{Category: schema.CategoryUnwantedBehavior}),
	newTemplate("optional-feature",
		`where\s+.+?,\s*`,
		schema.Label{Category: schema.CategoryOptionalFeature}),
	newTemplate("event-driven",
		`when\s+.+?,\s*`,
		schema.Label{Category: schema.CategoryEventDriven}),
	newTemplate("state-driven",
		`while\s+.+?,\s*`,
		schema.Label{Category: schema.CategoryStateDriven}),
	newTemplate("ubiquitous",
		``,
		schema.Label{Category: schema.CategoryUbiquitous}),
}

// TemplateClassifier assigns the label of the first EARS template that matches.
type TemplateClassifier struct{}

// Classify returns the label of the first matching template, or
// schema.DoesNotMeet. The text is expected to be trimmed already.
func (TemplateClassifier) Classify(text string) schema.Label {
	label, _ := match(text)
	return label
}

// match returns the winning label and the name of the template that produced it.
func match(text string) (schema.Label, string) {
	for _, t := range templates {
		if t.pattern.MatchString(text) {
			return t.label, t.name
		}
	}
	return schema.DoesNotMeet, ""
}
