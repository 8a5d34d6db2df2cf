package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"bitwise74/social-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	// At most 3 requests per sender inside a trailing 60 second
	// window, recomputed on every call
	friendRequestLimit  = 3
	friendRequestWindow = time.Minute
)

func (a *API) FriendSend(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(uint)

	receiverID64, err := strconv.ParseUint(c.Param("receiverID"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid receiver ID provided",
			"requestID": requestID,
		})
		return
	}
	receiverID := uint(receiverID64)

	if receiverID == userID {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "You can't send a friend request to yourself",
			"requestID": requestID,
		})
		return
	}

	var receiver model.User
	if err := a.DB.First(&receiver, receiverID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"error":     "User not found",
				"requestID": requestID,
			})
			return
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to look up receiver", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	var recent int64
	err = a.DB.Model(&model.FriendRequest{}).
		Where("sender_id = ? AND created_at > ?", userID, time.Now().Add(-friendRequestWindow)).
		Count(&recent).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to count recent friend requests", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if recent >= friendRequestLimit {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"error":     "Too many friend requests. Try again in a minute",
			"requestID": requestID,
		})
		return
	}

	var dup bool
	err = a.DB.Model(&model.FriendRequest{}).
		Select("count(*) > 0").
		Where("sender_id = ? AND receiver_id = ?", userID, receiverID).
		Scan(&dup).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to check for an existing friend request", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if dup {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "A friend request to this user already exists",
			"requestID": requestID,
		})
		return
	}

	request := model.FriendRequest{
		SenderID:   userID,
		ReceiverID: receiverID,
		Status:     model.StatusPending,
	}

	if err := a.DB.Create(&request).Error; err != nil {
		// Two racing sends can both pass the checks above, the unique
		// index on (sender_id, receiver_id) decides the winner
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error":     "A friend request to this user already exists",
				"requestID": requestID,
			})
			return
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create friend request", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":          request.ID,
		"sender_id":   request.SenderID,
		"receiver_id": request.ReceiverID,
		"status":      request.Status,
		"created_at":  request.CreatedAt,
	})
}
