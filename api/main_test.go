package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"bitwise74/social-api/api"
	"bitwise74/social-api/model"
	"bitwise74/social-api/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var dbCount atomic.Int64

// newTestAPI spins up a router backed by a fresh in-memory database.
// Every call gets its own database so tests can't leak rows into each
// other.
func newTestAPI(t *testing.T) *api.API {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:apitest%d?mode=memory&cache=shared", dbCount.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(&model.User{}, &model.AuthToken{}, &model.FriendRequest{})
	require.NoError(t, err)

	return api.NewRouter(db)
}

// createUser inserts a user directly. The hash is junk, tests that
// care about passwords go through /signup instead.
func createUser(t *testing.T, a *api.API, email, userName string) model.User {
	t.Helper()

	user := model.User{
		Email:        email,
		UserName:     userName,
		PasswordHash: "x",
		IsActive:     true,
	}
	require.NoError(t, a.DB.Create(&user).Error)

	return user
}

func seedToken(t *testing.T, a *api.API, userID uint) string {
	t.Helper()

	key, err := util.GenerateToken(20)
	require.NoError(t, err)

	require.NoError(t, a.DB.Create(&model.AuthToken{Key: key, UserID: userID}).Error)
	return key
}

func perform(t *testing.T, a *api.API, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHeartbeat(t *testing.T) {
	a := newTestAPI(t)

	w := perform(t, a, http.MethodHead, "/heartbeat", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestValidate(t *testing.T) {
	a := newTestAPI(t)
	user := createUser(t, a, "jane@example.com", "jane")
	token := seedToken(t, a, user.ID)

	t.Run("live token", func(t *testing.T) {
		w := perform(t, a, http.MethodGet, "/validate", token, nil)
		require.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("unknown token", func(t *testing.T) {
		w := perform(t, a, http.MethodGet, "/validate", "deadbeef", nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
