// middlewares/auth_middleware.go
package middlewares

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/Sgonchar89/foodgram-project/config"
	"github.com/Sgonchar89/foodgram-project/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func parseToken(tokenString string) (*models.User, error) {
	secret := []byte(os.Getenv("JWT_SECRET"))
	if len(secret) == 0 {
		return nil, errors.New("server misconfigured: JWT_SECRET not set")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	var user models.User
	if v, ok := claims["userId"].(float64); ok {
		if err := config.DB.First(&user, uint(v)).Error; err != nil {
			return nil, errors.New("user not found")
		}
		return &user, nil
	}

	// fallback: email claim
	email, _ := claims["email"].(string)
	if email == "" {
		return nil, errors.New("email claim missing")
	}
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

// AuthMiddleware rejects requests without a valid Bearer token and puts
// the authenticated user into the gin context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		user, err := parseToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.Set("user", user)
		c.Set("userID", user.ID)
		c.Set("email", user.Email)
		c.Next()
	}
}

// OptionalAuth resolves the user when a token is present but lets
// anonymous requests through. Read endpoints use it so display flags
// (is_favorited, is_subscribed) can still be filled for viewers.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			if user, err := parseToken(strings.TrimPrefix(authHeader, "Bearer ")); err == nil {
				c.Set("user", user)
				c.Set("userID", user.ID)
				c.Set("email", user.Email)
			}
		}
		c.Next()
	}
}

// CurrentUser pulls the authenticated user out of the context; nil for
// anonymous requests.
func CurrentUser(c *gin.Context) *models.User {
	if v, ok := c.Get("user"); ok {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}
