package models

type ChangeType string

const (
	ChangeTypeBug         ChangeType = "bug"
	ChangeTypeEnhancement ChangeType = "enhancement"
	ChangeTypeChore       ChangeType = "chore"
	ChangeTypeRefactor    ChangeType = "refactor"
	ChangeTypeDocs        ChangeType = "docs"
	ChangeTypeTest        ChangeType = "test"
)

// Classification is the structured categorization of a diff.
// Confidence is in [0, 1]; 0.0 marks the parse-fallback classification.
type Classification struct {
	Type       ChangeType
	Labels     []string
	Confidence float64
}

// FallbackClassification is the designed default used whenever the AI
// output cannot be parsed or validated.
func FallbackClassification() Classification {
	return Classification{
		Type:       ChangeTypeChore,
		Labels:     []string{"chore"},
		Confidence: 0.0,
	}
}

// ValidChangeType reports whether t is one of the known change types.
func ValidChangeType(t ChangeType) bool {
	switch t {
	case ChangeTypeBug, ChangeTypeEnhancement, ChangeTypeChore,
		ChangeTypeRefactor, ChangeTypeDocs, ChangeTypeTest:
		return true
	}
	return false
}
