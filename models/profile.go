package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HealthProfile is the per-user wellness profile. Upserted as a whole
// document on save.
type HealthProfile struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID              string             `bson:"user_id" json:"userId"`
	DisplayName         string             `bson:"display_name" json:"displayName" validate:"max=100"`
	BirthYear           int                `bson:"birth_year,omitempty" json:"birthYear,omitempty" validate:"omitempty,min=1900,max=2100"`
	SleepGoalHours      float64            `bson:"sleep_goal_hours,omitempty" json:"sleepGoalHours,omitempty" validate:"omitempty,min=0,max=24"`
	ActivityGoalMinutes int                `bson:"activity_goal_minutes,omitempty" json:"activityGoalMinutes,omitempty" validate:"omitempty,min=0"`
	DietaryPreferences  []string           `bson:"dietary_preferences,omitempty" json:"dietaryPreferences,omitempty"`
	FocusAreas          []string           `bson:"focus_areas,omitempty" json:"focusAreas,omitempty"`
	UpdatedAt           time.Time          `bson:"updated_at" json:"updatedAt"`
}
