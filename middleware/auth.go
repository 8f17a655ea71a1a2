package middleware

import (
	"net/http"
	"strings"

	"lakehouse-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// RequireAdmin validates the Bearer session token issued by the login
// endpoint and stores the admin id on the context.
func RequireAdmin(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if !strings.HasPrefix(header, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing bearer token")
			c.Abort()
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			utils.JSONError(c, http.StatusUnauthorized, "UNAUTHORIZED", "invalid or expired token")
			c.Abort()
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			c.Set("admin_id", claims["admin_id"])
		}
		c.Next()
	}
}

// RequireInternalAPIKey guards the submission endpoint with the shared
// X-Internal-Api-Key header. With no key configured the guard is disabled in
// debug mode only, mirroring local development.
func RequireInternalAPIKey(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			if gin.Mode() == gin.DebugMode {
				c.Next()
				return
			}
			utils.JSONError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or missing API key")
			c.Abort()
			return
		}

		if c.GetHeader("X-Internal-Api-Key") != apiKey {
			utils.JSONError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or missing API key")
			c.Abort()
			return
		}
		c.Next()
	}
}
