package services

import (
	"math"
	"time"

	"vibeflow/models"
)

var (
	weightMoodValence = 0.7
	weightEnergy      = 0.3
)

// insightsWindowDays bounds the history considered by ComputeMoodSummary.
const insightsWindowDays = 14

// MoodSummary is the computed insight view over recent history.
type MoodSummary struct {
	WindowDays    int                     `json:"windowDays"`
	EntryCount    int                     `json:"entryCount"`
	MoodCounts    map[models.MoodKind]int `json:"moodCounts"`
	DominantMood  models.MoodKind         `json:"dominantMood,omitempty"`
	AverageEnergy float64                 `json:"averageEnergy"` // 1 (low) .. 3 (high)
	WellnessScore int                     `json:"wellnessScore"` // 0-100
	StreakDays    int                     `json:"streakDays"`
}

// moodValence maps each mood to a 0..1 positivity weight.
func moodValence(m models.MoodKind) float64 {
	switch m {
	case models.MoodHappy:
		return 1.0
	case models.MoodCalm:
		return 0.8
	case models.MoodTired:
		return 0.4
	case models.MoodStressed:
		return 0.25
	case models.MoodSad:
		return 0.15
	}
	return 0.5
}

func energyValue(e models.EnergyKind) float64 {
	switch e {
	case models.EnergyLow:
		return 1
	case models.EnergyMedium:
		return 2
	case models.EnergyHigh:
		return 3
	}
	return 2
}

// ComputeWellnessScore blends average mood valence with normalized
// energy into a 0-100 score.
// WellnessScore = 100 * (w1 * avgValence + w2 * normalizedEnergy)
func ComputeWellnessScore(avgValence, avgEnergy float64) int {
	normEnergy := (avgEnergy - 1) / 2 // 1..3 -> 0..1
	if normEnergy < 0 {
		normEnergy = 0
	}
	if normEnergy > 1 {
		normEnergy = 1
	}
	score := 100 * (weightMoodValence*avgValence + weightEnergy*normEnergy)
	return int(math.Round(math.Max(0, math.Min(100, score))))
}

// ComputeMoodSummary aggregates the last insightsWindowDays of
// newest-first history. now is a parameter so tests can pin it.
func ComputeMoodSummary(history []models.MoodEntry, now time.Time) MoodSummary {
	summary := MoodSummary{
		WindowDays: insightsWindowDays,
		MoodCounts: make(map[models.MoodKind]int),
	}

	cutoff := now.AddDate(0, 0, -insightsWindowDays)
	var valenceSum, energySum float64
	for _, e := range history {
		at := time.UnixMilli(e.Timestamp)
		if at.Before(cutoff) {
			continue
		}
		summary.EntryCount++
		summary.MoodCounts[e.Mood]++
		valenceSum += moodValence(e.Mood)
		energySum += energyValue(e.Energy)
	}

	if summary.EntryCount == 0 {
		return summary
	}

	n := float64(summary.EntryCount)
	summary.AverageEnergy = math.Round(energySum/n*100) / 100
	summary.WellnessScore = ComputeWellnessScore(valenceSum/n, energySum/n)
	summary.DominantMood = dominantMood(summary.MoodCounts)
	summary.StreakDays = streakDays(history, now)
	return summary
}

func dominantMood(counts map[models.MoodKind]int) models.MoodKind {
	// Fixed iteration order keeps ties deterministic.
	order := []models.MoodKind{models.MoodHappy, models.MoodCalm, models.MoodTired, models.MoodStressed, models.MoodSad}
	var best models.MoodKind
	bestCount := 0
	for _, m := range order {
		if counts[m] > bestCount {
			best = m
			bestCount = counts[m]
		}
	}
	return best
}

// streakDays counts consecutive calendar days ending today (or
// yesterday, if today has no entry yet) with at least one entry.
func streakDays(history []models.MoodEntry, now time.Time) int {
	days := make(map[string]struct{}, len(history))
	for _, e := range history {
		days[time.UnixMilli(e.Timestamp).Format("2006-01-02")] = struct{}{}
	}

	day := now
	if _, ok := days[day.Format("2006-01-02")]; !ok {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for {
		if _, ok := days[day.Format("2006-01-02")]; !ok {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
