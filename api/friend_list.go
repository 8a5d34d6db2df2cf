package api

import (
	"net/http"

	"bitwise74/social-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FriendList returns every user the caller shares an accepted request
// with, whichever side sent it. Friendship is mutual even though the
// underlying records are directed.
func (a *API) FriendList(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(uint)

	var accepted []model.FriendRequest
	err := a.DB.
		Where("status = ? AND (sender_id = ? OR receiver_id = ?)", model.StatusAccepted, userID, userID).
		Find(&accepted).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch accepted friend requests", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	seen := make(map[uint]struct{}, len(accepted))
	ids := make([]uint, 0, len(accepted))
	for _, r := range accepted {
		other := r.SenderID
		if other == userID {
			other = r.ReceiverID
		}

		if _, ok := seen[other]; ok {
			continue
		}
		seen[other] = struct{}{}
		ids = append(ids, other)
	}

	friends := []model.UserSummary{}
	if len(ids) > 0 {
		err = a.DB.Model(&model.User{}).
			Select("id", "user_name", "email").
			Where("id IN ?", ids).
			Order("id").
			Find(&friends).
			Error
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to fetch friends", zap.Error(err), zap.String("requestID", requestID))
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"friends": friends,
	})
}
