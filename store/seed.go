package store

import "vibeflow/models"

type seedRecommendation struct {
	Title        string
	Description  string
	Category     models.CategoryKind
	MoodTypes    []models.MoodKind
	EnergyLevels []models.EnergyKind
	ImageURL     string
}

// defaultCatalog is the catalog installed by SeedDefaults. Every mood
// and energy level has at least one match so the specific query rarely
// comes back empty once the store is seeded.
func defaultCatalog() []seedRecommendation {
	return []seedRecommendation{
		{
			Title:        "Take a short walk outside",
			Description:  "Ten minutes of fresh air and light movement to reset your head.",
			Category:     models.CategoryActivity,
			MoodTypes:    []models.MoodKind{models.MoodStressed, models.MoodSad, models.MoodTired},
			EnergyLevels: []models.EnergyKind{models.EnergyLow, models.EnergyMedium},
		},
		{
			Title:        "Box breathing",
			Description:  "Breathe in for 4, hold for 4, out for 4, hold for 4. Repeat five times.",
			Category:     models.CategoryMindfulness,
			MoodTypes:    []models.MoodKind{models.MoodStressed, models.MoodSad},
			EnergyLevels: []models.EnergyKind{models.EnergyLow, models.EnergyMedium, models.EnergyHigh},
		},
		{
			Title:        "Herbal tea break",
			Description:  "Chamomile or peppermint. No screens while the cup is warm.",
			Category:     models.CategoryFood,
			MoodTypes:    []models.MoodKind{models.MoodCalm, models.MoodStressed, models.MoodTired},
			EnergyLevels: []models.EnergyKind{models.EnergyLow, models.EnergyMedium},
		},
		{
			Title:        "Dance to one song",
			Description:  "Pick something upbeat and move for three minutes.",
			Category:     models.CategoryActivity,
			MoodTypes:    []models.MoodKind{models.MoodHappy, models.MoodCalm},
			EnergyLevels: []models.EnergyKind{models.EnergyMedium, models.EnergyHigh},
		},
		{
			Title:        "Gratitude list",
			Description:  "Write down three things that went well today, however small.",
			Category:     models.CategoryMindfulness,
			MoodTypes:    []models.MoodKind{models.MoodHappy, models.MoodCalm, models.MoodSad},
			EnergyLevels: []models.EnergyKind{models.EnergyLow, models.EnergyMedium, models.EnergyHigh},
		},
		{
			Title:        "Protein-rich snack",
			Description:  "A handful of nuts or greek yogurt to steady your energy.",
			Category:     models.CategoryFood,
			MoodTypes:    []models.MoodKind{models.MoodTired, models.MoodStressed},
			EnergyLevels: []models.EnergyKind{models.EnergyLow},
		},
		{
			Title:        "Twenty-minute nap",
			Description:  "Set an alarm. Longer than twenty minutes works against you.",
			Category:     models.CategoryActivity,
			MoodTypes:    []models.MoodKind{models.MoodTired},
			EnergyLevels: []models.EnergyKind{models.EnergyLow},
		},
		{
			Title:        "Body scan meditation",
			Description:  "Lie down and move your attention slowly from toes to head.",
			Category:     models.CategoryMindfulness,
			MoodTypes:    []models.MoodKind{models.MoodCalm, models.MoodTired, models.MoodStressed},
			EnergyLevels: []models.EnergyKind{models.EnergyLow, models.EnergyMedium},
		},
		{
			Title:        "Call a friend",
			Description:  "Five minutes of real conversation beats an hour of scrolling.",
			Category:     models.CategoryActivity,
			MoodTypes:    []models.MoodKind{models.MoodSad, models.MoodHappy},
			EnergyLevels: []models.EnergyKind{models.EnergyLow, models.EnergyMedium, models.EnergyHigh},
		},
		{
			Title:        "Dark chocolate square",
			Description:  "One square, eaten slowly. Notice the taste.",
			Category:     models.CategoryFood,
			MoodTypes:    []models.MoodKind{models.MoodSad, models.MoodStressed, models.MoodHappy},
			EnergyLevels: []models.EnergyKind{models.EnergyLow, models.EnergyMedium},
		},
		{
			Title:        "Stretch at your desk",
			Description:  "Neck rolls, shoulder shrugs, and a standing forward fold.",
			Category:     models.CategoryActivity,
			MoodTypes:    []models.MoodKind{models.MoodTired, models.MoodStressed, models.MoodCalm},
			EnergyLevels: []models.EnergyKind{models.EnergyMedium, models.EnergyHigh},
		},
		{
			Title:        "Plan tomorrow's first task",
			Description:  "Write one concrete next step so tomorrow starts itself.",
			Category:     models.CategoryMindfulness,
			MoodTypes:    []models.MoodKind{models.MoodHappy, models.MoodCalm, models.MoodStressed},
			EnergyLevels: []models.EnergyKind{models.EnergyMedium, models.EnergyHigh},
		},
	}
}
