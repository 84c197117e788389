package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vibeflow/services"
)

const emptyRecommendationsMessage = "No recommendations available yet — track your mood to get personalized recommendations."

// GetRecommendations refreshes and returns the recommendation list for
// the current user's mood. Degradation never surfaces as an error:
// a builtin-fallback result carries a notice, a genuinely empty list
// carries empty-state copy.
func GetRecommendations(sessions *services.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		session := sessions.Attach(c.Request.Context(), userID)
		session.RefreshRecommendations(c.Request.Context())
		snapshot := session.Snapshot()

		resp := gin.H{
			"recommendations": snapshot.Recommendations,
			"source":          snapshot.Source,
		}
		if snapshot.Source == services.SourceBuiltin {
			resp["notice"] = "We couldn't load your personalized recommendations. Showing starter suggestions instead."
		}
		if len(snapshot.Recommendations) == 0 {
			resp["emptyMessage"] = emptyRecommendationsMessage
		}
		c.JSON(http.StatusOK, resp)
	}
}

// SetLike toggles the liked flag on a recommendation.
func SetLike(sessions *services.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		var body struct {
			Liked *bool `json:"liked" binding:"required"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "liked is required"})
			return
		}

		session := sessions.Attach(c.Request.Context(), userID)
		session.SetLikeState(c.Request.Context(), c.Param("id"), *body.Liked)
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	}
}

// SetCompletion toggles the completed flag on a recommendation.
func SetCompletion(sessions *services.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		var body struct {
			Completed *bool `json:"completed" binding:"required"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "completed is required"})
			return
		}

		session := sessions.Attach(c.Request.Context(), userID)
		session.SetCompletionState(c.Request.Context(), c.Param("id"), *body.Completed)
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	}
}
