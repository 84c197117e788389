// Package store defines the persistence interfaces the services are
// built against, plus the MongoDB implementation. The interfaces are
// deliberately narrow so the recommendation cascade and the session
// controller can be exercised with fakes.
package store

import (
	"context"
	"errors"
	"time"

	"vibeflow/models"
)

// ErrNotFound is returned when a single-document lookup matches nothing.
var ErrNotFound = errors.New("store: not found")

type MoodStore interface {
	// InsertMoodEntry persists the entry and returns it with the
	// store-assigned id filled in.
	InsertMoodEntry(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error)
	// MoodHistory returns the user's entries newest-first.
	MoodHistory(ctx context.Context, userID string, limit int64) ([]models.MoodEntry, error)
}

type RecommendationStore interface {
	CountRecommendations(ctx context.Context) (int64, error)
	// FindByMoodEnergy returns rows whose mood_types contains mood AND
	// whose energy_levels contains energy.
	FindByMoodEnergy(ctx context.Context, mood models.MoodKind, energy models.EnergyKind) ([]models.RecommendationDoc, error)
	// FindGeneral returns up to limit rows with no filter.
	FindGeneral(ctx context.Context, limit int64) ([]models.RecommendationDoc, error)
	// SeedDefaults installs the default catalog. Idempotent: safe to
	// call repeatedly and concurrently without duplicating rows.
	SeedDefaults(ctx context.Context) error
}

type RatingStore interface {
	// UpsertRating writes the combined liked/completed snapshot keyed
	// on (user_id, recommendation_id).
	UpsertRating(ctx context.Context, rating models.Rating) error
	RatingsByUser(ctx context.Context, userID string) ([]models.Rating, error)
}

type ProfileStore interface {
	GetProfile(ctx context.Context, userID string) (*models.HealthProfile, error)
	UpsertProfile(ctx context.Context, profile *models.HealthProfile) error
}

type UserStore interface {
	CountByEmail(ctx context.Context, email string) (int64, error)
	InsertUser(ctx context.Context, user *models.User) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByID(ctx context.Context, userID string) (*models.User, error)
	FindUserByResetToken(ctx context.Context, token string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateTokens(ctx context.Context, userID, token, refreshToken string) error
	SetResetToken(ctx context.Context, userID, token string, expires time.Time) error
	UpdatePassword(ctx context.Context, userID, hashedPassword string) error
}
