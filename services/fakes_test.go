package services

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vibeflow/models"
)

// fakeRecStore scripts the catalog queries the cascade issues.
type fakeRecStore struct {
	mu sync.Mutex

	count       int64
	countErr    error
	specific    []models.RecommendationDoc
	specificErr error
	general     []models.RecommendationDoc
	generalErr  error
	seedErr     error
	// onSeed runs inside SeedDefaults with the lock held, letting a
	// test make seeding populate the fake.
	onSeed func(s *fakeRecStore)

	countCalls    int
	specificCalls int
	generalCalls  int
	seedCalls     int
	seedSignal    chan struct{}
}

func (s *fakeRecStore) CountRecommendations(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countCalls++
	return s.count, s.countErr
}

func (s *fakeRecStore) FindByMoodEnergy(ctx context.Context, mood models.MoodKind, energy models.EnergyKind) ([]models.RecommendationDoc, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.specificCalls++
	return s.specific, s.specificErr
}

func (s *fakeRecStore) FindGeneral(ctx context.Context, limit int64) ([]models.RecommendationDoc, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generalCalls++
	return s.general, s.generalErr
}

func (s *fakeRecStore) SeedDefaults(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seedCalls++
	if s.onSeed != nil {
		s.onSeed(s)
	}
	if s.seedSignal != nil {
		select {
		case s.seedSignal <- struct{}{}:
		default:
		}
	}
	return s.seedErr
}

func (s *fakeRecStore) calls() (count, specific, general, seed int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.countCalls, s.specificCalls, s.generalCalls, s.seedCalls
}

// fakeMoodStore records inserts and serves a scripted history.
type fakeMoodStore struct {
	mu sync.Mutex

	history    []models.MoodEntry
	historyErr error
	insertErr  error
	inserted   []models.MoodEntry
}

func (s *fakeMoodStore) InsertMoodEntry(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.insertErr != nil {
		return nil, s.insertErr
	}
	stored := *entry
	stored.ID = primitive.NewObjectID()
	s.inserted = append(s.inserted, stored)
	return &stored, nil
}

func (s *fakeMoodStore) MoodHistory(ctx context.Context, userID string, limit int64) ([]models.MoodEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.historyErr != nil {
		return nil, s.historyErr
	}
	out := make([]models.MoodEntry, len(s.history))
	copy(out, s.history)
	return out, nil
}

// fakeRatingStore records every upsert in call order.
type fakeRatingStore struct {
	mu sync.Mutex

	ratings   []models.Rating
	loadErr   error
	upsertErr error
	upserts   []models.Rating
}

func (s *fakeRatingStore) UpsertRating(ctx context.Context, rating models.Rating) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.upserts = append(s.upserts, rating)
	return s.upsertErr
}

func (s *fakeRatingStore) RatingsByUser(ctx context.Context, userID string) ([]models.Rating, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	out := make([]models.Rating, len(s.ratings))
	copy(out, s.ratings)
	return out, nil
}

func recDoc(id primitive.ObjectID, title string) models.RecommendationDoc {
	return models.RecommendationDoc{
		ID:           id,
		Title:        title,
		Description:  "desc",
		Category:     models.CategoryActivity,
		MoodTypes:    []models.MoodKind{models.MoodSad},
		EnergyLevels: []models.EnergyKind{models.EnergyLow},
	}
}
