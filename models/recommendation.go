package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RecommendationDoc is the raw catalog row as stored. Duplicate rows are
// possible (reseeding, partial seeds); the dedupe pass collapses them
// before anything reaches a client.
type RecommendationDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Title        string             `bson:"title"`
	Description  string             `bson:"description"`
	Category     CategoryKind       `bson:"category"`
	MoodTypes    []MoodKind         `bson:"mood_types"`
	EnergyLevels []EnergyKind       `bson:"energy_levels"`
	ImageURL     string             `bson:"image_url,omitempty"`
	CreatedAt    time.Time          `bson:"created_at,omitempty"`
}

// Recommendation is the deduplicated catalog item served to clients.
type Recommendation struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Category     CategoryKind `json:"category"`
	MoodTypes    []MoodKind   `json:"moodTypes"`
	EnergyLevels []EnergyKind `json:"energyLevels"`
	ImageURL     string       `json:"imageUrl,omitempty"`
}

// RecommendationView decorates a Recommendation with the requesting
// user's rating flags for display.
type RecommendationView struct {
	Recommendation
	Liked     bool `json:"liked"`
	Completed bool `json:"completed"`
}
