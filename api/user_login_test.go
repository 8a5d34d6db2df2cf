package api_test

import (
	"net/http"
	"testing"

	"bitwise74/social-api/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserLogin(t *testing.T) {
	t.Run("success and idempotent token", func(t *testing.T) {
		a := newTestAPI(t)

		hash, err := a.Argon.GenerateFromPassword("Password123")
		require.NoError(t, err)
		require.NoError(t, a.DB.Create(&model.User{
			Email:        "jane@example.com",
			UserName:     "jane",
			PasswordHash: hash,
			IsActive:     true,
		}).Error)

		w := perform(t, a, http.MethodPost, "/login", "", map[string]string{
			"email":    "jane@example.com",
			"password": "Password123",
		})
		require.Equal(t, http.StatusOK, w.Code)

		first := decode(t, w)["token"].(string)
		assert.Len(t, first, 40)

		// Logging in again must hand back the same token
		w = perform(t, a, http.MethodPost, "/login", "", map[string]string{
			"email":    "jane@example.com",
			"password": "Password123",
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, first, decode(t, w)["token"])

		var count int64
		require.NoError(t, a.DB.Model(&model.AuthToken{}).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})

	t.Run("email lookup is case-insensitive", func(t *testing.T) {
		a := newTestAPI(t)

		hash, err := a.Argon.GenerateFromPassword("Password123")
		require.NoError(t, err)
		require.NoError(t, a.DB.Create(&model.User{
			Email:        "jane@example.com",
			PasswordHash: hash,
			IsActive:     true,
		}).Error)

		w := perform(t, a, http.MethodPost, "/login", "", map[string]string{
			"email":    "JANE@example.com",
			"password": "Password123",
		})
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		a := newTestAPI(t)

		hash, err := a.Argon.GenerateFromPassword("Password123")
		require.NoError(t, err)
		require.NoError(t, a.DB.Create(&model.User{
			Email:        "jane@example.com",
			PasswordHash: hash,
			IsActive:     true,
		}).Error)

		wrongPass := perform(t, a, http.MethodPost, "/login", "", map[string]string{
			"email":    "jane@example.com",
			"password": "WrongPassword",
		})
		require.Equal(t, http.StatusUnauthorized, wrongPass.Code)

		unknownEmail := perform(t, a, http.MethodPost, "/login", "", map[string]string{
			"email":    "nobody@example.com",
			"password": "Password123",
		})
		require.Equal(t, http.StatusUnauthorized, unknownEmail.Code)

		assert.Equal(t, decode(t, wrongPass)["error"], decode(t, unknownEmail)["error"])
	})

	t.Run("missing body fields", func(t *testing.T) {
		a := newTestAPI(t)

		w := perform(t, a, http.MethodPost, "/login", "", map[string]string{
			"email": "jane@example.com",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("inactive user can't log in", func(t *testing.T) {
		a := newTestAPI(t)

		hash, err := a.Argon.GenerateFromPassword("Password123")
		require.NoError(t, err)
		user := model.User{
			Email:        "gone@example.com",
			PasswordHash: hash,
		}
		require.NoError(t, a.DB.Create(&user).Error)
		require.NoError(t, a.DB.Model(&user).Update("is_active", false).Error)

		w := perform(t, a, http.MethodPost, "/login", "", map[string]string{
			"email":    "gone@example.com",
			"password": "Password123",
		})
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
