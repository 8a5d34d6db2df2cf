package api_test

import (
	"net/http"
	"testing"

	"bitwise74/social-api/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserSignup(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		a := newTestAPI(t)

		w := perform(t, a, http.MethodPost, "/signup", "", map[string]string{
			"email":    "Jane@Example.COM",
			"password": "Password123",
		})
		require.Equal(t, http.StatusOK, w.Code)

		resp := decode(t, w)
		data := resp["data"].(map[string]any)

		// Only the domain part gets lowercased
		assert.Equal(t, "Jane@example.com", data["email"])
		assert.Equal(t, "Jane@example.com", data["user_name"])
		assert.Equal(t, true, data["is_active"])

		assert.NotContains(t, w.Body.String(), "Password123")
		assert.NotContains(t, w.Body.String(), "password_hash")

		var user model.User
		require.NoError(t, a.DB.Where("email = ?", "Jane@example.com").First(&user).Error)
		assert.NotEmpty(t, user.PasswordHash)
		assert.NotEqual(t, "Password123", user.PasswordHash)
	})

	t.Run("custom display name", func(t *testing.T) {
		a := newTestAPI(t)

		w := perform(t, a, http.MethodPost, "/signup", "", map[string]string{
			"email":     "jane@example.com",
			"password":  "Password123",
			"user_name": "janey",
		})
		require.Equal(t, http.StatusOK, w.Code)

		data := decode(t, w)["data"].(map[string]any)
		assert.Equal(t, "janey", data["user_name"])
	})

	t.Run("missing fields", func(t *testing.T) {
		a := newTestAPI(t)

		w := perform(t, a, http.MethodPost, "/signup", "", map[string]string{
			"email": "jane@example.com",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Password")
	})

	t.Run("invalid email", func(t *testing.T) {
		a := newTestAPI(t)

		w := perform(t, a, http.MethodPost, "/signup", "", map[string]string{
			"email":    "not-an-email",
			"password": "Password123",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid email address")
	})

	t.Run("weak password", func(t *testing.T) {
		a := newTestAPI(t)

		w := perform(t, a, http.MethodPost, "/signup", "", map[string]string{
			"email":    "jane@example.com",
			"password": "short",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "at least 8 characters")
	})

	t.Run("duplicate email is case-insensitive", func(t *testing.T) {
		a := newTestAPI(t)

		w := perform(t, a, http.MethodPost, "/signup", "", map[string]string{
			"email":    "jane@example.com",
			"password": "Password123",
		})
		require.Equal(t, http.StatusOK, w.Code)

		w = perform(t, a, http.MethodPost, "/signup", "", map[string]string{
			"email":    "JANE@EXAMPLE.COM",
			"password": "Password123",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "already registered")

		var count int64
		require.NoError(t, a.DB.Model(&model.User{}).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})
}
