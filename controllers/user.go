package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vibeflow/helpers"
	"vibeflow/models"
	"vibeflow/services"
	"vibeflow/store"
)

func sanitize(user *models.User) {
	user.Password = nil
	user.Token = nil
	user.Refresh_token = nil
	user.Reset_token = nil
	user.Reset_expires = nil
}

// ===================== SIGNUP =====================
func Signup(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var user models.User
		if err := c.BindJSON(&user); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if validationErr := validate.Struct(user); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		count, err := users.CountByEmail(ctx, *user.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if count > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
			return
		}

		// Force default role
		role := "USER"
		user.Role = &role

		hashed, err := helpers.HashPassword(*user.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		user.Password = &hashed
		user.Created_at = time.Now()
		user.Updated_at = time.Now()
		user.ID = primitive.NewObjectID()
		user.User_id = user.ID.Hex()

		accessToken, refreshToken, err := helpers.GenerateTokens(*user.Email, user.User_id, *user.Role)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate tokens"})
			return
		}
		user.Token = &accessToken
		user.Refresh_token = &refreshToken

		if err := users.InsertUser(ctx, &user); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		sanitize(&user)
		c.JSON(http.StatusOK, gin.H{
			"message":       "User created successfully",
			"token":         accessToken,
			"refresh_token": refreshToken,
			"user":          user,
		})
	}
}

// ===================== LOGIN =====================
// A successful login also constructs the user's mood/recommendation
// session so history and ratings are warm for the first page load.
func Login(users store.UserStore, sessions *services.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var loginInput models.User
		if err := c.BindJSON(&loginInput); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		if loginInput.Email == nil || loginInput.Password == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
			return
		}

		foundUser, err := users.FindUserByEmail(ctx, *loginInput.Email)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}

		if !helpers.VerifyPassword(*foundUser.Password, *loginInput.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}

		token, refreshToken, err := helpers.GenerateTokens(*foundUser.Email, foundUser.User_id, *foundUser.Role)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate tokens"})
			return
		}
		if err := users.UpdateTokens(ctx, foundUser.User_id, token, refreshToken); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to persist tokens"})
			return
		}

		sessions.Attach(ctx, foundUser.User_id)

		sanitize(foundUser)
		c.JSON(http.StatusOK, gin.H{
			"user":          foundUser,
			"token":         token,
			"refresh_token": refreshToken,
		})
	}
}

// ===================== LOGOUT =====================
func Logout(sessions *services.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		sessions.Detach(userID)
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

// ===================== GET CURRENT USER (ME) =====================
func GetMe(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		user, err := users.FindUserByID(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		sanitize(user)
		c.JSON(http.StatusOK, user)
	}
}

// ===================== GET ALL USERS (admin) =====================
func GetUsers(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := users.ListUsers(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		for i := range all {
			sanitize(&all[i])
		}
		c.JSON(http.StatusOK, all)
	}
}

// ===================== FORGOT PASSWORD =====================
func ForgotPassword(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body struct {
			Email *string `json:"email" binding:"required"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
			return
		}

		// Don't reveal whether the email exists.
		neutral := gin.H{"message": "If an account exists with this email, you will receive reset instructions."}

		foundUser, err := users.FindUserByEmail(ctx, *body.Email)
		if err != nil {
			c.JSON(http.StatusOK, neutral)
			return
		}

		resetToken, err := helpers.GenerateResetToken()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate reset token"})
			return
		}
		if err := users.SetResetToken(ctx, foundUser.User_id, resetToken, time.Now().Add(1*time.Hour)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set reset token"})
			return
		}

		// In dev: return the token so the frontend can open the reset
		// page. In production, send email only.
		c.JSON(http.StatusOK, gin.H{
			"message":     neutral["message"],
			"reset_token": resetToken,
		})
	}
}

// ===================== RESET PASSWORD =====================
func ResetPassword(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body struct {
			Token       string  `json:"token" binding:"required"`
			NewPassword *string `json:"new_password" binding:"required,min=6"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Token and new_password (min 6 chars) are required"})
			return
		}

		foundUser, err := users.FindUserByResetToken(ctx, body.Token)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired reset link"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if foundUser.Reset_expires == nil || foundUser.Reset_expires.Before(time.Now()) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Reset link has expired"})
			return
		}

		hashed, err := helpers.HashPassword(*body.NewPassword)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		if err := users.UpdatePassword(ctx, foundUser.User_id, hashed); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Password reset successfully"})
	}
}
