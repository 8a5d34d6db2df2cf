package api

import (
	"net/http"
	"strconv"
	"strings"

	"bitwise74/social-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Page size is fixed, clients can't request bigger pages
const searchPageSize = 10

// Keywords are matched literally, so LIKE metacharacters in them have
// to be escaped before they go into the pattern
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchQueryCheck validates the search parameters. It runs in front
// of the response cache so error bodies are never stored and replayed
// to other callers.
func (a *API) SearchQueryCheck(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	keyword := strings.TrimSpace(c.Query("search"))
	if keyword == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "A search keyword is required",
			"requestID": requestID,
		})
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid page provided",
			"requestID": requestID,
		})
		return
	}

	c.Set("searchKeyword", keyword)
	c.Set("searchPage", page)
	c.Next()
}

// UserSearch filters users by the search keyword. A keyword with an
// "@" in it is treated as an exact email match, anything else matches
// display names by literal substring. Both are case-insensitive.
func (a *API) UserSearch(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	keyword := c.MustGet("searchKeyword").(string)
	page := c.MustGet("searchPage").(int)

	var cond string
	var arg string
	if strings.Contains(keyword, "@") {
		cond = "LOWER(email) = LOWER(?)"
		arg = keyword
	} else {
		cond = `LOWER(user_name) LIKE ? ESCAPE '\'`
		arg = "%" + likeEscaper.Replace(strings.ToLower(keyword)) + "%"
	}

	var count int64
	err := a.DB.Model(&model.User{}).Where(cond, arg).Count(&count).Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to count search results", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	results := []model.UserSummary{}
	err = a.DB.Model(&model.User{}).
		Select("id", "user_name", "email").
		Where(cond, arg).
		Order("id").
		Offset((page - 1) * searchPageSize).
		Limit(searchPageSize).
		Find(&results).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to find users by search keyword", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":   count,
		"page":    page,
		"results": results,
	})
}
