package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MoodEntry is a single logged mood. Immutable once created.
// ClientID is the correlation id generated before the insert; the
// store-assigned ObjectID replaces the optimistic placeholder by
// matching on it.
type MoodEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClientID  string             `bson:"client_id" json:"clientId"`
	UserID    string             `bson:"user_id" json:"userId"`
	Mood      MoodKind           `bson:"mood" json:"mood"`
	Energy    EnergyKind         `bson:"energy" json:"energy"`
	Note      string             `bson:"note,omitempty" json:"note,omitempty"`
	Timestamp int64              `bson:"timestamp" json:"timestamp"` // epoch millis
	CreatedAt time.Time          `bson:"created_at" json:"-"`
}
