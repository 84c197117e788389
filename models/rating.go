package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Rating holds a user's like/completion state for one recommendation.
// One logical row per (user_id, recommendation_id), upserted on every
// toggle with the combined snapshot of both flags.
type Rating struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID           string             `bson:"user_id" json:"userId"`
	RecommendationID string             `bson:"recommendation_id" json:"recommendationId"`
	Liked            bool               `bson:"liked" json:"liked"`
	Completed        bool               `bson:"completed" json:"completed"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"-"`
}
