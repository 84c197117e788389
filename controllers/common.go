package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"vibeflow/helpers"
)

var validate = validator.New()

// getUserID pulls the authenticated user id out of the JWT claims set
// by the middleware. Writes the error response itself; callers return
// on empty string.
func getUserID(c *gin.Context) string {
	claims := getClaims(c)
	if claims == nil {
		return ""
	}
	return claims.UserID
}

func getClaims(c *gin.Context) *helpers.Claims {
	claimsVal, ok := c.Get("claims")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil
	}
	claims, ok := claimsVal.(*helpers.Claims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid claims"})
		return nil
	}
	return claims
}
