// Package api contains all endpoints available
package api

import (
	"strings"
	"time"

	"bitwise74/social-api/middleware"
	"bitwise74/social-api/pkg/security"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	ginzap "github.com/gin-contrib/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

type API struct {
	DB     *gorm.DB
	Router *gin.Engine
	Argon  *security.ArgonHash

	store *persist.MemoryStore
}

func NewRouter(db *gorm.DB) *API {
	a := &API{
		DB:    db,
		Argon: security.New(),
		store: persist.NewMemoryStore(time.Minute),
	}

	router := gin.New()
	a.Router = router

	corsOrigins := viper.GetString("host.cors")
	if corsOrigins == "" {
		corsOrigins = "http://localhost:5173"
	}
	origins := strings.Split(corsOrigins, ",")

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v, ok := c.Get("userID"); ok {
					fields = append(fields, zap.Uint("userID", v.(uint)))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectTrailingSlash = true

	rateLimit := viper.GetInt("security.rate_limit")
	if rateLimit <= 0 {
		rateLimit = 50
	}

	router.Use(middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RequestsPerSecond: rateLimit,
		Burst:             rateLimit * 2,
	}))

	auth := middleware.NewAuthMiddleware(db)

	// HEAD /heartbeat 				-> Used to check if the server is alive
	router.HEAD("/heartbeat", a.Heartbeat)

	// GET /validate				-> Checks that the presented token is live
	router.GET("/validate", auth, a.Validate)

	// POST /signup 				-> Registers a new user
	router.POST("/signup", a.UserSignup)

	// POST /login 					-> Logs in a user and returns their token
	router.POST("/login", a.UserLogin)

	// GET /search-users/?search=kw			-> Searches users by email or name, paginated
	router.GET("/search-users/", auth, a.SearchQueryCheck, a.cacheFor(30), a.UserSearch)

	// POST /send-friend-request/:receiverID/	-> Sends a friend request to a user
	router.POST("/send-friend-request/:receiverID/", auth, a.FriendSend)

	// POST /update-friend-request/:requestID/:action/ -> Accepts or rejects a pending request
	router.POST("/update-friend-request/:requestID/:action/", auth, a.FriendUpdate)

	// GET /list-friends/				-> Lists the accepted friends of the caller
	router.GET("/list-friends/", auth, a.FriendList)

	// GET /list-pending-requests/			-> Lists requests waiting on the caller
	router.GET("/list-pending-requests/", auth, a.FriendPending)

	return a
}

func (a *API) cacheFor(sec int) gin.HandlerFunc {
	return cache.CacheByRequestURI(a.store, time.Second*time.Duration(sec))
}
