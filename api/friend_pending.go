package api

import (
	"net/http"

	"bitwise74/social-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FriendPending lists the requests still waiting on the caller, in
// insertion order, with the sender attached so clients can render
// who's asking
func (a *API) FriendPending(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(uint)

	requests := []model.FriendRequest{}
	err := a.DB.
		Preload("Sender").
		Where("receiver_id = ? AND status = ?", userID, model.StatusPending).
		Order("id").
		Find(&requests).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch pending friend requests", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"requests": requests,
	})
}
