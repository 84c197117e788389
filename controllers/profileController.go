package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"vibeflow/models"
	"vibeflow/store"
)

// GetProfile returns the user's health profile, or an empty one if
// none has been saved yet.
func GetProfile(profiles store.ProfileStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		profile, err := profiles.GetProfile(c.Request.Context(), userID)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusOK, models.HealthProfile{UserID: userID})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

// SaveProfile upserts the user's health profile.
func SaveProfile(profiles store.ProfileStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		var profile models.HealthProfile
		if err := c.BindJSON(&profile); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile payload"})
			return
		}
		if err := validate.Struct(profile); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		profile.UserID = userID

		if err := profiles.UpsertProfile(c.Request.Context(), &profile); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}
