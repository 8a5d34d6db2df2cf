package api

import (
	"errors"
	"net/http"

	"bitwise74/social-api/model"
	"bitwise74/social-api/pkg/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type loginBody struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserLogin verifies the credentials and hands out the user's token.
// The token is minted on first login and reused on every one after.
// Unknown emails and wrong passwords are deliberately not told apart.
func (a *API) UserLogin(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data loginBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	var user model.User
	err := a.DB.Where("LOWER(email) = LOWER(?)", data.Email).First(&user).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			zap.L().Error("Failed to look up user", zap.Error(err), zap.String("requestID", requestID))

			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusUnauthorized, gin.H{
			"error":     "Invalid credentials",
			"requestID": requestID,
		})
		return
	}

	ok, err := a.Argon.VerifyPasswd(data.Password, user.PasswordHash)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to verify password", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if !ok || !user.IsActive {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":     "Invalid credentials",
			"requestID": requestID,
		})
		return
	}

	token, err := a.getOrCreateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to issue auth token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token.Key,
	})
}

func (a *API) getOrCreateToken(userID uint) (*model.AuthToken, error) {
	var token model.AuthToken

	err := a.DB.Where("user_id = ?", userID).First(&token).Error
	if err == nil {
		return &token, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	key, err := util.GenerateToken(20)
	if err != nil {
		return nil, err
	}

	token = model.AuthToken{
		Key:    key,
		UserID: userID,
	}

	err = a.DB.Create(&token).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Lost the race against a concurrent login, the winner's
		// token is the one that counts
		err = a.DB.Where("user_id = ?", userID).First(&token).Error
	}
	if err != nil {
		return nil, err
	}

	return &token, nil
}
