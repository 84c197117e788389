package services

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"vibeflow/models"
	"vibeflow/store"
)

// FetchSource reports which layer of the cascade produced the result.
type FetchSource string

const (
	SourceNone     FetchSource = "none"     // guard clause, no store access
	SourceSpecific FetchSource = "specific" // mood+energy match
	SourceGeneral  FetchSource = "general"  // bounded unfiltered query
	SourceReseeded FetchSource = "reseeded" // general query after a reseed
	SourceBuiltin  FetchSource = "builtin"  // hardcoded starters
)

// generalLimit bounds the unfiltered fallback query.
const generalLimit = 20

type RecommendationService struct {
	store store.RecommendationStore
}

func NewRecommendationService(s store.RecommendationStore) *RecommendationService {
	return &RecommendationService{store: s}
}

// Fetch retrieves recommendations for a mood with a layered fallback:
// specific mood+energy match, then a bounded general query, then a
// reseed plus one retry, then the built-in starter list. It never
// returns an error; recommendations are non-critical content and
// showing something always beats showing nothing. The FetchSource
// tells the caller whether to attach a degradation notice.
func (s *RecommendationService) Fetch(ctx context.Context, mood *models.MoodEntry, userID string) ([]models.Recommendation, FetchSource) {
	if mood == nil || userID == "" {
		return []models.Recommendation{}, SourceNone
	}

	if n, err := s.store.CountRecommendations(ctx); err == nil && n == 0 {
		if err := s.store.SeedDefaults(ctx); err != nil {
			log.Warn().Err(err).Msg("seeding empty recommendation catalog failed")
		}
	}

	docs, err := s.store.FindByMoodEnergy(ctx, mood.Mood, mood.Energy)
	if err == nil && len(docs) > 0 {
		return Deduplicate(docs), SourceSpecific
	}
	if err != nil {
		log.Warn().Err(err).Str("mood", string(mood.Mood)).Str("energy", string(mood.Energy)).
			Msg("specific recommendation query failed, falling back")
	}

	docs, err = s.store.FindGeneral(ctx, generalLimit)
	if err == nil && len(docs) > 0 {
		return Deduplicate(docs), SourceGeneral
	}

	if seedErr := s.store.SeedDefaults(ctx); seedErr != nil {
		log.Warn().Err(seedErr).Msg("reseed attempt failed")
	}
	docs, err = s.store.FindGeneral(ctx, generalLimit)
	if err == nil && len(docs) > 0 {
		return Deduplicate(docs), SourceReseeded
	}
	if err != nil {
		log.Error().Err(err).Msg("all store-backed recommendation queries failed")
	}

	// Last resort: serve the starters and try to seed the store in the
	// background so the next call has real data.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.store.SeedDefaults(ctx); err != nil {
			log.Warn().Err(err).Msg("background seed after builtin fallback failed")
		}
	}()
	return builtinStarters(), SourceBuiltin
}

// builtinStarters is the hardcoded floor of the cascade. Unique by
// construction, so it skips the dedupe pass.
func builtinStarters() []models.Recommendation {
	return []models.Recommendation{
		{
			ID:           "starter-walk",
			Title:        "Take a short walk",
			Description:  "Ten minutes outside, no phone.",
			Category:     models.CategoryActivity,
			MoodTypes:    []models.MoodKind{models.MoodStressed, models.MoodSad, models.MoodTired},
			EnergyLevels: []models.EnergyKind{models.EnergyLow, models.EnergyMedium, models.EnergyHigh},
		},
		{
			ID:           "starter-breathe",
			Title:        "Two minutes of slow breathing",
			Description:  "In for four counts, out for six. Repeat.",
			Category:     models.CategoryMindfulness,
			MoodTypes:    []models.MoodKind{models.MoodHappy, models.MoodCalm, models.MoodStressed, models.MoodSad, models.MoodTired},
			EnergyLevels: []models.EnergyKind{models.EnergyLow, models.EnergyMedium, models.EnergyHigh},
		},
		{
			ID:           "starter-water",
			Title:        "Drink a glass of water",
			Description:  "Dehydration reads as fatigue more often than you'd think.",
			Category:     models.CategoryFood,
			MoodTypes:    []models.MoodKind{models.MoodHappy, models.MoodCalm, models.MoodStressed, models.MoodSad, models.MoodTired},
			EnergyLevels: []models.EnergyKind{models.EnergyLow, models.EnergyMedium, models.EnergyHigh},
		},
	}
}
