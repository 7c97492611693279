package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"lassie-backend/config"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

const ownerContextKey = "owner_id"

// Auth validates the Supabase-issued bearer token and stores the caller's
// id (the JWT sub claim) in the request context.
func Auth(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
		return
	}
	tokenString := strings.TrimPrefix(header, "Bearer ")

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(config.GlobalConfig.Auth.Secret), nil
	})
	if err != nil || !token.Valid {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
		return
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token has no subject"})
		return
	}

	c.Set(ownerContextKey, sub)
	c.Next()
}

// OwnerID returns the authenticated caller's id set by Auth
func OwnerID(c *gin.Context) (string, error) {
	value, exists := c.Get(ownerContextKey)
	if !exists {
		return "", errors.New("owner not found in context")
	}
	ownerID, ok := value.(string)
	if !ok || ownerID == "" {
		return "", errors.New("invalid owner in context")
	}
	return ownerID, nil
}
