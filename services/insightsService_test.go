package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"vibeflow/models"
)

func entryAt(mood models.MoodKind, energy models.EnergyKind, at time.Time) models.MoodEntry {
	return models.MoodEntry{Mood: mood, Energy: energy, Timestamp: at.UnixMilli()}
}

func TestComputeMoodSummaryEmptyHistory(t *testing.T) {
	summary := ComputeMoodSummary(nil, time.Now())
	assert.Zero(t, summary.EntryCount)
	assert.Zero(t, summary.WellnessScore)
	assert.Zero(t, summary.StreakDays)
	assert.Empty(t, summary.DominantMood)
}

func TestComputeMoodSummaryAggregates(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	history := []models.MoodEntry{
		entryAt(models.MoodHappy, models.EnergyHigh, now),
		entryAt(models.MoodHappy, models.EnergyMedium, now.AddDate(0, 0, -1)),
		entryAt(models.MoodSad, models.EnergyLow, now.AddDate(0, 0, -2)),
		// Outside the 14-day window, must be ignored.
		entryAt(models.MoodStressed, models.EnergyLow, now.AddDate(0, 0, -20)),
	}

	summary := ComputeMoodSummary(history, now)
	assert.Equal(t, 3, summary.EntryCount)
	assert.Equal(t, 2, summary.MoodCounts[models.MoodHappy])
	assert.Equal(t, 1, summary.MoodCounts[models.MoodSad])
	assert.Zero(t, summary.MoodCounts[models.MoodStressed])
	assert.Equal(t, models.MoodHappy, summary.DominantMood)
	assert.Equal(t, 3, summary.StreakDays)
	assert.InDelta(t, 2.0, summary.AverageEnergy, 0.01)
}

func TestWellnessScoreBounds(t *testing.T) {
	assert.Equal(t, 100, ComputeWellnessScore(1.0, 3))
	assert.LessOrEqual(t, ComputeWellnessScore(0, 1), 100)
	assert.GreaterOrEqual(t, ComputeWellnessScore(0, 1), 0)

	// All-happy high-energy beats all-sad low-energy.
	high := ComputeWellnessScore(1.0, 3)
	low := ComputeWellnessScore(0.15, 1)
	assert.Greater(t, high, low)
}

func TestStreakStopsAtGap(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	history := []models.MoodEntry{
		entryAt(models.MoodCalm, models.EnergyMedium, now),
		entryAt(models.MoodCalm, models.EnergyMedium, now.AddDate(0, 0, -1)),
		// Gap on day -2.
		entryAt(models.MoodCalm, models.EnergyMedium, now.AddDate(0, 0, -3)),
	}
	summary := ComputeMoodSummary(history, now)
	assert.Equal(t, 2, summary.StreakDays)
}

func TestStreakAllowsMissingToday(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	history := []models.MoodEntry{
		entryAt(models.MoodCalm, models.EnergyMedium, now.AddDate(0, 0, -1)),
		entryAt(models.MoodCalm, models.EnergyMedium, now.AddDate(0, 0, -2)),
	}
	summary := ComputeMoodSummary(history, now)
	assert.Equal(t, 2, summary.StreakDays, "today's entry may simply not exist yet")
}
