package middleware

import (
	"time"

	"github.com/sahradeniz/Astrologi-Ai-sub000/auth"
	"github.com/sahradeniz/Astrologi-Ai-sub000/model"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards routes behind the HttpOnly session cookie minted at
// login. Tokens past half their lifetime are refreshed in place so an active
// session never expires mid-use.
func AuthMiddleware(isProduction bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie("auth_token")
		if err != nil {
			c.AbortWithStatusJSON(401, gin.H{"error": "Unauthorized"})
			return
		}

		claims, err := auth.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(401, gin.H{"error": "Invalid session"})
			return
		}

		if time.Until(claims.ExpiresAt.Time) < 15*time.Minute {
			newToken, _ := auth.GenerateToken(claims.User)
			c.SetCookie("auth_token", newToken, 1800, "/", "", isProduction, true)
		}

		c.Set("user", claims.User)
		c.Next()
	}
}

// GetUser extracts the profile set by AuthMiddleware from the context.
func GetUser(c *gin.Context) (model.UserProfile, bool) {
	val, exists := c.Get("user")
	if !exists {
		return model.UserProfile{}, false
	}

	user, ok := val.(model.UserProfile)
	return user, ok
}
