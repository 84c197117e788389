package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vibeflow/models"
)

const (
	collUsers           = "users"
	collMoodEntries     = "mood_entries"
	collRecommendations = "recommendations"
	collRatings         = "recommendation_ratings"
	collProfiles        = "health_profiles"

	opTimeout = 10 * time.Second
)

// Mongo implements every store interface against a single database.
type Mongo struct {
	db *mongo.Database
}

func NewMongo(client *mongo.Client, database string) *Mongo {
	return &Mongo{db: client.Database(database)}
}

func (m *Mongo) coll(name string) *mongo.Collection {
	return m.db.Collection(name)
}

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, opTimeout)
}

// EnsureIndexes creates the indexes the write paths rely on: a unique
// title index backing idempotent seeding and a unique compound index
// backing the (user, recommendation) rating upsert.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	_, err := m.coll(collRecommendations).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "title", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create recommendations title index: %w", err)
	}

	_, err = m.coll(collRatings).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "recommendation_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create ratings compound index: %w", err)
	}

	_, err = m.coll(collMoodEntries).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "timestamp", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("create mood_entries index: %w", err)
	}
	return nil
}

// -------- moods --------

func (m *Mongo) InsertMoodEntry(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	stored := *entry
	if stored.ID.IsZero() {
		stored.ID = primitive.NewObjectID()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	if _, err := m.coll(collMoodEntries).InsertOne(ctx, stored); err != nil {
		return nil, fmt.Errorf("insert mood entry: %w", err)
	}
	return &stored, nil
}

func (m *Mongo) MoodHistory(ctx context.Context, userID string, limit int64) ([]models.MoodEntry, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}).SetLimit(limit)
	cursor, err := m.coll(collMoodEntries).Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find mood history: %w", err)
	}
	defer cursor.Close(ctx)
	var out []models.MoodEntry
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode mood history: %w", err)
	}
	return out, nil
}

// -------- recommendations --------

func (m *Mongo) CountRecommendations(ctx context.Context) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	n, err := m.coll(collRecommendations).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count recommendations: %w", err)
	}
	return n, nil
}

func (m *Mongo) FindByMoodEnergy(ctx context.Context, mood models.MoodKind, energy models.EnergyKind) ([]models.RecommendationDoc, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	// Equality against an array field matches documents whose array
	// contains the value.
	filter := bson.M{
		"mood_types":    mood,
		"energy_levels": energy,
	}
	cursor, err := m.coll(collRecommendations).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find recommendations by mood/energy: %w", err)
	}
	defer cursor.Close(ctx)
	var out []models.RecommendationDoc
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode recommendations: %w", err)
	}
	return out, nil
}

func (m *Mongo) FindGeneral(ctx context.Context, limit int64) ([]models.RecommendationDoc, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	opts := options.Find().SetLimit(limit)
	cursor, err := m.coll(collRecommendations).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find recommendations: %w", err)
	}
	defer cursor.Close(ctx)
	var out []models.RecommendationDoc
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode recommendations: %w", err)
	}
	return out, nil
}

// -------- ratings --------

func (m *Mongo) UpsertRating(ctx context.Context, rating models.Rating) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	filter := bson.M{
		"user_id":           rating.UserID,
		"recommendation_id": rating.RecommendationID,
	}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "liked", Value: rating.Liked},
		{Key: "completed", Value: rating.Completed},
		{Key: "updated_at", Value: time.Now()},
	}}}
	opts := options.Update().SetUpsert(true)
	if _, err := m.coll(collRatings).UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("upsert rating: %w", err)
	}
	return nil
}

func (m *Mongo) RatingsByUser(ctx context.Context, userID string) ([]models.Rating, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	cursor, err := m.coll(collRatings).Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("find ratings: %w", err)
	}
	defer cursor.Close(ctx)
	var out []models.Rating
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode ratings: %w", err)
	}
	return out, nil
}

// -------- profiles --------

func (m *Mongo) GetProfile(ctx context.Context, userID string) (*models.HealthProfile, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var profile models.HealthProfile
	err := m.coll(collProfiles).FindOne(ctx, bson.M{"user_id": userID}).Decode(&profile)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return &profile, nil
}

func (m *Mongo) UpsertProfile(ctx context.Context, profile *models.HealthProfile) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	profile.UpdatedAt = time.Now()
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "display_name", Value: profile.DisplayName},
		{Key: "birth_year", Value: profile.BirthYear},
		{Key: "sleep_goal_hours", Value: profile.SleepGoalHours},
		{Key: "activity_goal_minutes", Value: profile.ActivityGoalMinutes},
		{Key: "dietary_preferences", Value: profile.DietaryPreferences},
		{Key: "focus_areas", Value: profile.FocusAreas},
		{Key: "updated_at", Value: profile.UpdatedAt},
	}}}
	opts := options.Update().SetUpsert(true)
	if _, err := m.coll(collProfiles).UpdateOne(ctx, bson.M{"user_id": profile.UserID}, update, opts); err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}

// -------- users --------

func (m *Mongo) CountByEmail(ctx context.Context, email string) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	n, err := m.coll(collUsers).CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func (m *Mongo) InsertUser(ctx context.Context, user *models.User) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	if _, err := m.coll(collUsers).InsertOne(ctx, user); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (m *Mongo) findUser(ctx context.Context, filter bson.M) (*models.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var user models.User
	err := m.coll(collUsers).FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

func (m *Mongo) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.findUser(ctx, bson.M{"email": email})
}

func (m *Mongo) FindUserByID(ctx context.Context, userID string) (*models.User, error) {
	return m.findUser(ctx, bson.M{"user_id": userID})
}

func (m *Mongo) FindUserByResetToken(ctx context.Context, token string) (*models.User, error) {
	return m.findUser(ctx, bson.M{"reset_token": token})
}

func (m *Mongo) ListUsers(ctx context.Context) ([]models.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	cursor, err := m.coll(collUsers).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cursor.Close(ctx)
	var out []models.User
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return out, nil
}

func (m *Mongo) UpdateTokens(ctx context.Context, userID, token, refreshToken string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "token", Value: token},
		{Key: "refresh_token", Value: refreshToken},
		{Key: "updated_at", Value: time.Now()},
	}}}
	if _, err := m.coll(collUsers).UpdateOne(ctx, bson.M{"user_id": userID}, update); err != nil {
		return fmt.Errorf("update tokens: %w", err)
	}
	return nil
}

func (m *Mongo) SetResetToken(ctx context.Context, userID, token string, expires time.Time) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "reset_token", Value: token},
		{Key: "reset_expires", Value: expires},
		{Key: "updated_at", Value: time.Now()},
	}}}
	if _, err := m.coll(collUsers).UpdateOne(ctx, bson.M{"user_id": userID}, update); err != nil {
		return fmt.Errorf("set reset token: %w", err)
	}
	return nil
}

func (m *Mongo) UpdatePassword(ctx context.Context, userID, hashedPassword string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "password", Value: hashedPassword},
		{Key: "reset_token", Value: nil},
		{Key: "reset_expires", Value: nil},
		{Key: "updated_at", Value: time.Now()},
	}}}
	if _, err := m.coll(collUsers).UpdateOne(ctx, bson.M{"user_id": userID}, update); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// SeedDefaults installs the default catalog one row at a time with
// $setOnInsert upserts keyed on title, so repeated or concurrent calls
// never duplicate rows.
func (m *Mongo) SeedDefaults(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	coll := m.coll(collRecommendations)
	opts := options.Update().SetUpsert(true)
	for _, rec := range defaultCatalog() {
		doc := models.RecommendationDoc{
			ID:           primitive.NewObjectID(),
			Title:        rec.Title,
			Description:  rec.Description,
			Category:     rec.Category,
			MoodTypes:    rec.MoodTypes,
			EnergyLevels: rec.EnergyLevels,
			ImageURL:     rec.ImageURL,
			CreatedAt:    time.Now(),
		}
		update := bson.D{{Key: "$setOnInsert", Value: doc}}
		if _, err := coll.UpdateOne(ctx, bson.M{"title": rec.Title}, update, opts); err != nil {
			return fmt.Errorf("seed recommendation %q: %w", rec.Title, err)
		}
	}
	log.Debug().Int("rows", len(defaultCatalog())).Msg("recommendation catalog seeded")
	return nil
}
