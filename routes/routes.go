package routes

import (
	"github.com/gin-gonic/gin"

	"vibeflow/controllers"
	"vibeflow/middleware"
	"vibeflow/services"
	"vibeflow/store"
)

// Deps carries everything the route handlers need.
type Deps struct {
	Users    store.UserStore
	Profiles store.ProfileStore
	Sessions *services.SessionManager
	Chat     *services.ChatService
}

func SetupRoutes(router *gin.RouterGroup, deps *Deps) {
	router.POST("/signup", controllers.Signup(deps.Users))
	router.POST("/login", controllers.Login(deps.Users, deps.Sessions))
	router.POST("/forgot-password", controllers.ForgotPassword(deps.Users))
	router.POST("/reset-password", controllers.ResetPassword(deps.Users))

	protected := router.Group("/")
	protected.Use(middleware.Authenticate())
	{
		protected.GET("/me", controllers.GetMe(deps.Users))
		protected.POST("/logout", controllers.Logout(deps.Sessions))

		protected.POST("/moods", controllers.LogMood(deps.Sessions))
		protected.GET("/moods", controllers.GetMoodHistory(deps.Sessions))
		protected.GET("/insights", controllers.GetInsights(deps.Sessions))

		protected.GET("/recommendations", controllers.GetRecommendations(deps.Sessions))
		protected.PUT("/recommendations/:id/like", controllers.SetLike(deps.Sessions))
		protected.PUT("/recommendations/:id/complete", controllers.SetCompletion(deps.Sessions))

		protected.GET("/profile", controllers.GetProfile(deps.Profiles))
		protected.PUT("/profile", controllers.SaveProfile(deps.Profiles))

		if deps.Chat != nil {
			protected.POST("/chat", controllers.Chat(deps.Chat, deps.Sessions))
		}

		// ADMIN only
		protected.GET("/users",
			middleware.Authorize("ADMIN"),
			controllers.GetUsers(deps.Users),
		)
	}
}
