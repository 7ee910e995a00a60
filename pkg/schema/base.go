package schema

// Category is the top-level EARS classification of a requirement sentence.
type Category string

const (
	CategoryComplex          Category = "Complex requirement"                   // "While X, when Y, the system shall..."
	CategoryComplexUnwanted  Category = "Complex unwanted behavior requirement" // "If X, then while Y, when Z, the system shall..."
	CategoryEventDriven      Category = "Event-Driven requirement"             // "When X, the system shall..."
	CategoryTemporal         Category = "Temporal requirement"                 // "After X, the system shall..."
	CategoryUnwantedBehavior Category = "Unwanted behavior requirement"        // "If X, then the system shall..."
	CategoryOptionalFeature  Category = "Optional feature requirement"         // "Where X, the system shall..."
	CategoryStateDriven      Category = "State-Driven requirement"             // "While X, the system shall..."
	CategoryUbiquitous       Category = "Ubiquitous requirement"               // "The system shall..."
	CategoryDoesNotMeet      Category = "DOES NOT MEET"
)

// Subtype qualifies a category that has structural variants.
type Subtype string

const (
	SubtypeNone           Subtype = ""
	SubtypeStateEvent     Subtype = "State-Event"
	SubtypeCompoundEvents Subtype = "Compound Events"
)

// PunctuationStatus is the overall outcome of the style check.
type PunctuationStatus string

const (
	PunctuationOK     PunctuationStatus = "Punctuation OK"
	PunctuationIssues PunctuationStatus = "Punctuation issues"
	PunctuationNA     PunctuationStatus = "N/A" // Row had no requirement text
)

// Issue is one entry of the fixed style-defect vocabulary.
type Issue string

const (
	IssueMissingEndPunctuation   Issue = "Missing end punctuation"
	IssueRepeatedPunctuation     Issue = "Multiple consecutive punctuation marks"
	IssueMissingIntroClauseComma Issue = "Missing comma after introductory clause"
	IssueRepeatedSpaces          Issue = "Multiple consecutive spaces"
	IssueMalformedShall          Issue = `Missing or improperly formatted "shall" keyword`
)

// InvalidRequirementText replaces the text of rows that carried no requirement.
const InvalidRequirementText = "Invalid requirement"

// validSubtypes lists the subtypes each category may carry besides SubtypeNone.
var validSubtypes = map[Category][]Subtype{
	CategoryComplex:          {SubtypeStateEvent},
	CategoryComplexUnwanted:  nil,
	CategoryEventDriven:      {SubtypeCompoundEvents},
	CategoryTemporal:         nil,
	CategoryUnwantedBehavior: nil,
	CategoryOptionalFeature:  nil,
	CategoryStateDriven:      nil,
	CategoryUbiquitous:       nil,
	CategoryDoesNotMeet:      nil,
}
