package api

import (
	"errors"
	"net/http"
	"strconv"

	"bitwise74/social-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// FriendUpdate moves a pending request addressed to the caller into
// one of the two terminal states. The lookup filters on the receiver,
// so a request that belongs to someone else answers the same 404 as
// one that doesn't exist.
func (a *API) FriendUpdate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(uint)

	var newStatus model.FriendRequestStatus
	switch c.Param("action") {
	case "accept":
		newStatus = model.StatusAccepted
	case "reject":
		newStatus = model.StatusRejected
	default:
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid action provided",
			"requestID": requestID,
		})
		return
	}

	id, err := strconv.ParseUint(c.Param("requestID"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request ID provided",
			"requestID": requestID,
		})
		return
	}

	var request model.FriendRequest
	err = a.DB.
		Where("id = ? AND receiver_id = ? AND status = ?", id, userID, model.StatusPending).
		First(&request).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"error":     "Friend request not found",
				"requestID": requestID,
			})
			return
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to look up friend request", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := a.DB.Model(&request).Update("status", newStatus).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update friend request", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          request.ID,
		"sender_id":   request.SenderID,
		"receiver_id": request.ReceiverID,
		"status":      newStatus,
		"created_at":  request.CreatedAt,
	})
}
