package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"vibeflow/models"
	"vibeflow/services"
)

// LogMood records a mood entry for the current user and returns the
// refreshed session snapshot.
func LogMood(sessions *services.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		var body struct {
			Mood   models.MoodKind   `json:"mood" binding:"required"`
			Energy models.EnergyKind `json:"energy" binding:"required"`
			Note   string            `json:"note"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mood payload"})
			return
		}

		session := sessions.Attach(c.Request.Context(), userID)
		entry, err := session.LogMood(c.Request.Context(), body.Mood, body.Energy, body.Note)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"entry":    entry,
			"snapshot": session.Snapshot(),
		})
	}
}

// GetMoodHistory returns the current user's entries, newest-first.
func GetMoodHistory(sessions *services.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		limit := 30
		if l := c.Query("limit"); l != "" {
			if n, err := strconv.Atoi(l); err == nil && n > 0 {
				limit = n
			}
		}

		session := sessions.Attach(c.Request.Context(), userID)
		history := session.History()
		if len(history) > limit {
			history = history[:limit]
		}
		c.JSON(http.StatusOK, gin.H{
			"currentMood": session.CurrentMood(),
			"history":     history,
		})
	}
}

// GetInsights computes the wellness summary over recent history.
func GetInsights(sessions *services.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		session := sessions.Attach(c.Request.Context(), userID)
		summary := services.ComputeMoodSummary(session.History(), time.Now())
		c.JSON(http.StatusOK, summary)
	}
}
