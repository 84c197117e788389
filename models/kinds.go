package models

// MoodKind is the canonical mood vocabulary used across the pipeline.
type MoodKind string

const (
	MoodHappy    MoodKind = "happy"
	MoodCalm     MoodKind = "calm"
	MoodTired    MoodKind = "tired"
	MoodStressed MoodKind = "stressed"
	MoodSad      MoodKind = "sad"
)

// EnergyKind is the self-reported energy level attached to a mood entry.
type EnergyKind string

const (
	EnergyLow    EnergyKind = "low"
	EnergyMedium EnergyKind = "medium"
	EnergyHigh   EnergyKind = "high"
)

// CategoryKind classifies a recommendation.
type CategoryKind string

const (
	CategoryFood        CategoryKind = "food"
	CategoryActivity    CategoryKind = "activity"
	CategoryMindfulness CategoryKind = "mindfulness"
)

func (m MoodKind) Valid() bool {
	switch m {
	case MoodHappy, MoodCalm, MoodTired, MoodStressed, MoodSad:
		return true
	}
	return false
}

func (e EnergyKind) Valid() bool {
	switch e {
	case EnergyLow, EnergyMedium, EnergyHigh:
		return true
	}
	return false
}

func (c CategoryKind) Valid() bool {
	switch c {
	case CategoryFood, CategoryActivity, CategoryMindfulness:
		return true
	}
	return false
}

// Emoji returns the glyph shown next to a mood in chat context.
func (m MoodKind) Emoji() string {
	switch m {
	case MoodHappy:
		return "😊"
	case MoodCalm:
		return "😌"
	case MoodTired:
		return "😴"
	case MoodStressed:
		return "😰"
	case MoodSad:
		return "😢"
	}
	return ""
}
