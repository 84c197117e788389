package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vibeflow/services"
)

// Chat proxies a message to the AI wellness assistant. The session's
// current mood is attached when the client didn't send one itself.
func Chat(chat *services.ChatService, sessions *services.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		var req services.ChatRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
			return
		}

		if req.CurrentMood == "" {
			session := sessions.Attach(c.Request.Context(), userID)
			if mood := session.CurrentMood(); mood != nil {
				req.CurrentMood = mood.Mood
			}
		}

		response, err := chat.Reply(c.Request.Context(), req)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "The assistant is unavailable right now. Please try again."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"response": response})
	}
}
