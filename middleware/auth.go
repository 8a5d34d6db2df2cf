package middleware

import (
	"errors"
	"net/http"
	"strings"

	"bitwise74/social-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewAuthMiddleware resolves the bearer token in the Authorization
// header to a user and sets userID for the handlers behind it. Every
// failure mode answers the same 401 so callers can't probe which
// tokens exist.
func NewAuthMiddleware(d *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)

		header := c.GetHeader("Authorization")
		key, found := strings.CutPrefix(header, "Bearer ")
		if !found || key == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Invalid or missing token",
				"requestID": requestID,
			})
			return
		}

		var token model.AuthToken
		err := d.Preload("User").Where("key = ?", key).First(&token).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				zap.L().Error("Failed to look up auth token", zap.Error(err), zap.String("requestID", requestID))
			}

			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Invalid or missing token",
				"requestID": requestID,
			})
			return
		}

		if !token.User.IsActive {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Invalid or missing token",
				"requestID": requestID,
			})
			return
		}

		c.Set("userID", token.UserID)
		c.Next()
	}
}
